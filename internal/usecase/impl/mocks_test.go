package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/metrics"
)

// Hand-written testify doubles for the repository and service interfaces the
// services under test depend on.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			PasswordMinLength: 6,
			ConfirmTokenTTL:   24 * time.Hour,
			ResetTokenTTL:     time.Hour,
		},
		SMTP: &config.SMTPConfig{
			AppURL: "https://backoffice.example.com",
		},
		Pagination: &config.PaginationConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
	}
	cfg.JWT = config.JWTConfig{
		Secret:    "test-secret",
		AccessTTL: time.Hour,
	}

	return cfg
}

// testMetrics is shared by every test in the package; Prometheus collectors
// register on the default registry and must only be created once per binary.
var testMetrics = metrics.New()

type mockCRUDRepository[E repository.Entity] struct {
	mock.Mock
}

func (m *mockCRUDRepository[E]) Create(ctx context.Context, e E) (int, error) {
	args := m.Called(ctx, e)

	return args.Int(0), args.Error(1)
}

func (m *mockCRUDRepository[E]) FindByID(ctx context.Context, id int) (E, error) {
	args := m.Called(ctx, id)

	var zero E
	if args.Get(0) != nil {
		return args.Get(0).(E), args.Error(1)
	}

	return zero, args.Error(1)
}

func (m *mockCRUDRepository[E]) List(ctx context.Context, query repository.ListQuery) ([]E, error) {
	args := m.Called(ctx, query)

	if args.Get(0) != nil {
		return args.Get(0).([]E), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCRUDRepository[E]) Find(ctx context.Context, query repository.ListQuery, conds ...repository.Condition) ([]E, error) {
	args := m.Called(ctx, query, conds)

	if args.Get(0) != nil {
		return args.Get(0).([]E), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCRUDRepository[E]) Update(ctx context.Context, e E) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockCRUDRepository[E]) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	args := m.Called(ctx, id)

	if args.Get(0) != nil {
		return args.Get(0).(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	if args.Get(0) != nil {
		return args.Get(0).(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) (int, error) {
	args := m.Called(ctx, order)

	return args.Int(0), args.Error(1)
}

func (m *mockOrderRepository) CreateDetails(ctx context.Context, details []*entity.OrderDetail) error {
	return m.Called(ctx, details).Error(0)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int) (*entity.Order, error) {
	args := m.Called(ctx, id)

	if args.Get(0) != nil {
		return args.Get(0).(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

// mockTransactionManager runs the callback against a fixed factory, so the
// repositories seen inside the "transaction" are the test's own mocks.
type mockTransactionManager struct {
	factory repository.RepositoryFactory
	execErr error
}

func (m *mockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}

type mockRepositoryFactory struct {
	users        repository.UserRepository
	orders       repository.OrderRepository
	orderDetails repository.CRUDRepository[*entity.OrderDetail]
}

func (f *mockRepositoryFactory) Users() repository.UserRepository   { return f.users }
func (f *mockRepositoryFactory) Orders() repository.OrderRepository { return f.orders }
func (f *mockRepositoryFactory) OrderDetails() repository.CRUDRepository[*entity.OrderDetail] {
	return f.orderDetails
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *mockPasswordHasher) ValidatePolicy(password string) error {
	return m.Called(password).Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(userID int, email, role string) (string, error) {
	args := m.Called(userID, email, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	if args.Get(0) != nil {
		return args.Get(0).(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockOpaqueTokens struct {
	mock.Mock
}

func (m *mockOpaqueTokens) Issue() (string, string, error) {
	args := m.Called()

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockOpaqueTokens) Matches(raw, hash string) bool {
	return m.Called(raw, hash).Bool(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}
