package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
	opaqueTokens *mockOpaqueTokens
	mailer       *mockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokenService := &mockTokenService{}
	opaqueTokens := &mockOpaqueTokens{}
	mailer := &mockMailer{}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		OpaqueTokens: opaqueTokens,
		Mailer:       mailer,
		Metrics:      testMetrics,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		opaqueTokens: opaqueTokens,
		mailer:       mailer,
	}
}

func TestAuthService_RegisterMerchant(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.On("ValidatePolicy", "secret123").Return(nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.opaqueTokens.On("Issue").Return("raw-token", "token-hash", nil)

	f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "merchant@example.com" &&
			user.UserType == entity.UserTypeMerchant &&
			user.StoreName == "Corner Store" &&
			user.PasswordHash == "hashed" &&
			user.ConfirmTokenHash == "token-hash" &&
			!user.EmailConfirmed &&
			user.Role == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).SetEntityID(11)
	}).Return(nil)

	f.mailer.On("Send", mock.Anything, "merchant@example.com", mock.Anything,
		mock.MatchedBy(func(body string) bool {
			// The raw token travels in the mailed link, never the hash.
			return containsAll(body, "confirm-email", "userId=11", "raw-token")
		})).Return(nil)

	out, err := f.service.RegisterMerchant(context.Background(), usecase.RegisterMerchantInput{
		Email:       "merchant@example.com",
		Password:    "secret123",
		StoreName:   "Corner Store",
		PhoneNumber: "+20100000000",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, out.UserID)

	f.userRepo.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestAuthService_RegisterEndUserWeakPassword(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.On("ValidatePolicy", "123").Return(domainerrors.ErrPasswordPolicy)

	_, err := f.service.RegisterEndUser(context.Background(), usecase.RegisterEndUserInput{
		Email:    "user@example.com",
		Password: "123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordPolicy)

	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.On("ValidatePolicy", "secret123").Return(nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.opaqueTokens.On("Issue").Return("raw-token", "token-hash", nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.ErrEmailTaken.WrapMessage("failed to create user"))

	_, err := f.service.RegisterEndUser(context.Background(), usecase.RegisterEndUserInput{
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_RegisterSucceedsWhenMailFails(t *testing.T) {
	f := createTestAuthService(t)

	f.hasher.On("ValidatePolicy", "secret123").Return(nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.opaqueTokens.On("Issue").Return("raw-token", "token-hash", nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).SetEntityID(5)
	}).Return(nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	out, err := f.service.RegisterEndUser(context.Background(), usecase.RegisterEndUserInput{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.UserID)
}

func TestAuthService_Login(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{
		ID:             11,
		Email:          "merchant@example.com",
		PasswordHash:   "hashed",
		UserType:       entity.UserTypeMerchant,
		Role:           entity.RoleMerchant,
		EmailConfirmed: true,
	}

	f.userRepo.On("FindByEmail", mock.Anything, "merchant@example.com").Return(user, nil)
	f.hasher.On("Check", "secret123", "hashed").Return(true)
	f.tokenService.On("GenerateToken", 11, "merchant@example.com", entity.RoleMerchant).
		Return("signed.jwt", nil)

	out, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "merchant@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.AccessToken)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), out.ExpiresAt, time.Minute)
}

func TestAuthService_LoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	f := createTestAuthService(t)

	f.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrNotFound)

	_, unknownErr := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

	user := &entity.User{ID: 11, Email: "real@example.com", PasswordHash: "hashed", EmailConfirmed: true}
	f.userRepo.On("FindByEmail", mock.Anything, "real@example.com").Return(user, nil)
	f.hasher.On("Check", "wrong", "hashed").Return(false)

	_, wrongErr := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "real@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginUnconfirmedEmail(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{ID: 11, Email: "new@example.com", PasswordHash: "hashed", EmailConfirmed: false}
	f.userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(user, nil)
	f.hasher.On("Check", "secret123", "hashed").Return(true)

	_, err := f.service.Login(context.Background(), usecase.LoginInput{
		Email:    "new@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotConfirmed)

	f.tokenService.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{
		ID:               11,
		Email:            "merchant@example.com",
		UserType:         entity.UserTypeMerchant,
		ConfirmTokenHash: "token-hash",
		ConfirmExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	f.userRepo.On("FindByID", mock.Anything, 11).Return(user, nil)
	f.opaqueTokens.On("Matches", "raw-token", "token-hash").Return(true)
	f.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *entity.User) bool {
		return updated.EmailConfirmed &&
			updated.Role == entity.RoleMerchant &&
			updated.ConfirmTokenHash == ""
	})).Return(nil)

	err := f.service.ConfirmEmail(context.Background(), usecase.ConfirmEmailInput{
		UserID: 11,
		Token:  "raw-token",
	})
	require.NoError(t, err)

	f.userRepo.AssertExpectations(t)
}

func TestAuthService_ConfirmEmailRejections(t *testing.T) {
	f := createTestAuthService(t)

	// Unknown user.
	f.userRepo.On("FindByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)
	err := f.service.ConfirmEmail(context.Background(), usecase.ConfirmEmailInput{UserID: 99, Token: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// Already confirmed.
	f.userRepo.On("FindByID", mock.Anything, 11).Return(&entity.User{
		ID: 11, EmailConfirmed: true,
	}, nil).Once()
	err = f.service.ConfirmEmail(context.Background(), usecase.ConfirmEmailInput{UserID: 11, Token: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// Expired token.
	f.userRepo.On("FindByID", mock.Anything, 11).Return(&entity.User{
		ID:               11,
		ConfirmTokenHash: "token-hash",
		ConfirmExpiresAt: time.Now().UTC().Add(-time.Minute),
	}, nil).Once()
	err = f.service.ConfirmEmail(context.Background(), usecase.ConfirmEmailInput{UserID: 11, Token: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// Wrong token.
	f.userRepo.On("FindByID", mock.Anything, 11).Return(&entity.User{
		ID:               11,
		ConfirmTokenHash: "token-hash",
		ConfirmExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil).Once()
	f.opaqueTokens.On("Matches", "wrong", "token-hash").Return(false)
	err = f.service.ConfirmEmail(context.Background(), usecase.ConfirmEmailInput{UserID: 11, Token: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ResendConfirmationSilentOnUnknownOrConfirmed(t *testing.T) {
	f := createTestAuthService(t)

	f.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrNotFound)
	assert.NoError(t, f.service.ResendEmailConfirmation(context.Background(), "ghost@example.com"))

	f.userRepo.On("FindByEmail", mock.Anything, "done@example.com").
		Return(&entity.User{ID: 2, Email: "done@example.com", EmailConfirmed: true}, nil)
	assert.NoError(t, f.service.ResendEmailConfirmation(context.Background(), "done@example.com"))

	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResendConfirmationReissuesToken(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{ID: 3, Email: "new@example.com", ConfirmTokenHash: "old-hash"}
	f.userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(user, nil)
	f.opaqueTokens.On("Issue").Return("fresh-token", "fresh-hash", nil)
	f.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *entity.User) bool {
		return updated.ConfirmTokenHash == "fresh-hash"
	})).Return(nil)
	f.mailer.On("Send", mock.Anything, "new@example.com", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, f.service.ResendEmailConfirmation(context.Background(), "new@example.com"))

	f.mailer.AssertExpectations(t)
}

func TestAuthService_ResendConfirmationSucceedsWhenMailFails(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{ID: 3, Email: "new@example.com", ConfirmTokenHash: "old-hash"}
	f.userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(user, nil)
	f.opaqueTokens.On("Issue").Return("fresh-token", "fresh-hash", nil)
	f.userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	// An SMTP outage answering 500 only for known emails would reveal
	// which addresses are registered.
	assert.NoError(t, f.service.ResendEmailConfirmation(context.Background(), "new@example.com"))
}

func TestAuthService_ForgotPasswordSucceedsWhenMailFails(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{ID: 11, Email: "merchant@example.com"}
	f.userRepo.On("FindByEmail", mock.Anything, "merchant@example.com").Return(user, nil)
	f.opaqueTokens.On("Issue").Return("raw-reset", "reset-hash", nil)
	f.userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	assert.NoError(t, f.service.ForgotPassword(context.Background(), "merchant@example.com"))
}

func TestAuthService_ForgotPasswordSilentOnUnknown(t *testing.T) {
	f := createTestAuthService(t)

	f.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrNotFound)

	assert.NoError(t, f.service.ForgotPassword(context.Background(), "ghost@example.com"))
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword(t *testing.T) {
	f := createTestAuthService(t)

	user := &entity.User{
		ID:             11,
		Email:          "merchant@example.com",
		PasswordHash:   "old-hash",
		ResetTokenHash: "reset-hash",
		ResetExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	f.userRepo.On("FindByID", mock.Anything, 11).Return(user, nil)
	f.opaqueTokens.On("Matches", "raw-reset", "reset-hash").Return(true)
	f.hasher.On("ValidatePolicy", "newsecret").Return(nil)
	f.hasher.On("Hash", "newsecret").Return("new-hash", nil)
	f.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *entity.User) bool {
		return updated.PasswordHash == "new-hash" && updated.ResetTokenHash == ""
	})).Return(nil)

	err := f.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		UserID:      11,
		Token:       "raw-reset",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	f.userRepo.AssertExpectations(t)
}

func TestAuthService_ResetPasswordExpiredToken(t *testing.T) {
	f := createTestAuthService(t)

	f.userRepo.On("FindByID", mock.Anything, 11).Return(&entity.User{
		ID:             11,
		ResetTokenHash: "reset-hash",
		ResetExpiresAt: time.Now().UTC().Add(-time.Minute),
	}, nil)

	err := f.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		UserID:      11,
		Token:       "raw-reset",
		NewPassword: "newsecret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

// containsAll reports whether s contains every needle.
func containsAll(s string, needles ...string) bool {
	for _, needle := range needles {
		if !strings.Contains(s, needle) {
			return false
		}
	}

	return true
}
