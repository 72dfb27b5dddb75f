package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/metrics"
	"backoffice/internal/usecase"
)

// orderDetailsService implements the OrderDetailsUsecase interface. Line-level
// CRUD is delegated to the generic resource service; the composite create and
// the aggregate read are the specialized parts.
type orderDetailsService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	lines     usecase.CRUDUsecase[usecase.CreateOrderDetailInput, usecase.OrderDetailOutput]
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// OrderDetailsServiceParams holds dependencies for the order-details service, injected by Fx.
type OrderDetailsServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	DetailRepo repository.CRUDRepository[*entity.OrderDetail]
	Metrics    *metrics.Metrics
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderDetailsService is the constructor for orderDetailsService.
func NewOrderDetailsService(params OrderDetailsServiceParams) usecase.OrderDetailsUsecase {
	lines := newCRUDService(
		params.DetailRepo,
		detailFromCreate,
		detailFromDTO,
		detailToDTO,
		params.Config,
		params.Logger,
	)

	return &orderDetailsService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		lines:     lines,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func detailFromCreate(input usecase.CreateOrderDetailInput) *entity.OrderDetail {
	return &entity.OrderDetail{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Price:     input.Price,
	}
}

func detailFromDTO(dto usecase.OrderDetailOutput) *entity.OrderDetail {
	return &entity.OrderDetail{
		ID:        dto.ID,
		OrderID:   dto.OrderID,
		ProductID: dto.ProductID,
		Quantity:  dto.Quantity,
		Price:     dto.Price,
	}
}

func detailToDTO(data *entity.OrderDetail) usecase.OrderDetailOutput {
	return usecase.OrderDetailOutput{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderDetailsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWithOrder creates one order carrying every supplied detail line.
// The order insert and all line inserts commit atomically; a failure on any
// line rolls back the whole aggregate.
func (srv *orderDetailsService) CreateWithOrder(
	ctx context.Context,
	input usecase.CreateOrderDetailsInput,
) (*usecase.CreateOrderDetailsOutput, error) {
	if len(input.Details) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order must carry at least one detail line")
	}

	order := &entity.Order{
		CreatedAt:       time.Now().UTC(),
		UserID:          input.UserID,
		DeliveryAddress: input.DeliveryAddress,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderID, err := repoFactory.Orders().Create(ctx, order)
		if err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		details := make([]*entity.OrderDetail, 0, len(input.Details))
		for _, line := range input.Details {
			detail := detailFromCreate(line)
			detail.OrderID = orderID
			details = append(details, detail)
		}

		if err := repoFactory.Orders().CreateDetails(ctx, details); err != nil {
			return errors.Wrap(err, "failed to create order details")
		}

		order.Details = details

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order creation transaction",
			slog.Int("userID", input.UserID),
			slog.Int("lines", len(input.Details)),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.metrics.OrdersCreatedTotal.Inc()
	srv.metrics.OrderDetailLinesCreated.Add(float64(len(input.Details)))

	srv.log(ctx).Debug("Order created",
		slog.Int("orderID", order.ID),
		slog.Int("lines", len(input.Details)))

	return &usecase.CreateOrderDetailsOutput{
		OrderID: order.ID,
		Count:   len(input.Details),
	}, nil
}

// GetOrder retrieves an order aggregate with its detail lines.
func (srv *orderDetailsService) GetOrder(ctx context.Context, id int) (*usecase.OrderOutput, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
		}

		if errors.Is(err, repository.ErrInvalidID) {
			return nil, domainerrors.ErrInvalidArgument.WrapMessage("id must be greater than zero")
		}

		srv.log(ctx).Error("Failed to load order", slog.Int("id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load order")
	}

	details := make([]usecase.OrderDetailOutput, 0, len(order.Details))
	for _, detail := range order.Details {
		details = append(details, detailToDTO(detail))
	}

	return &usecase.OrderOutput{
		ID:              order.ID,
		CreatedAt:       order.CreatedAt,
		UserID:          order.UserID,
		DeliveryAddress: order.DeliveryAddress,
		Details:         details,
	}, nil
}

// GetByID retrieves a single detail line.
func (srv *orderDetailsService) GetByID(ctx context.Context, id int) (usecase.OrderDetailOutput, error) {
	return srv.lines.GetByID(ctx, id)
}

// GetAll retrieves one page of detail lines.
func (srv *orderDetailsService) GetAll(ctx context.Context, input usecase.ListInput) ([]usecase.OrderDetailOutput, error) {
	return srv.lines.GetAll(ctx, input)
}

// Update fully replaces a detail line.
func (srv *orderDetailsService) Update(ctx context.Context, id int, input usecase.OrderDetailOutput) error {
	return srv.lines.Update(ctx, id, input)
}

// Delete removes a detail line.
func (srv *orderDetailsService) Delete(ctx context.Context, id int) error {
	return srv.lines.Delete(ctx, id)
}
