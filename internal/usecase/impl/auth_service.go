package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/metrics"
	"backoffice/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	opaqueTokens    service.OpaqueTokens
	mailer          service.Mailer
	metrics         *metrics.Metrics
	appURL          string
	accessTTL       time.Duration
	confirmTokenTTL time.Duration
	resetTokenTTL   time.Duration
	logger          *slog.Logger
}

// registrationConfig captures what differs between the two account kinds so
// both registrations share one execution path.
type registrationConfig struct {
	Email     string
	Password  string
	UserType  entity.UserType
	BuildUser func(passwordHash, confirmTokenHash string, confirmExpiry time.Time) *entity.User
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OpaqueTokens service.OpaqueTokens
	Mailer       service.Mailer
	Metrics      *metrics.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	appURL := ""
	if params.Config.SMTP != nil {
		appURL = params.Config.SMTP.AppURL
	}

	confirmTTL := 24 * time.Hour
	resetTTL := time.Hour
	if params.Config.Auth != nil {
		if params.Config.Auth.ConfirmTokenTTL > 0 {
			confirmTTL = params.Config.Auth.ConfirmTokenTTL
		}

		if params.Config.Auth.ResetTokenTTL > 0 {
			resetTTL = params.Config.Auth.ResetTokenTTL
		}
	}

	return &authService{
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		opaqueTokens:    params.OpaqueTokens,
		mailer:          params.Mailer,
		metrics:         params.Metrics,
		appURL:          appURL,
		accessTTL:       params.Config.JWT.AccessTTL,
		confirmTokenTTL: confirmTTL,
		resetTokenTTL:   resetTTL,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterMerchant creates an unconfirmed merchant account and mails the
// confirmation link.
func (srv *authService) RegisterMerchant(ctx context.Context, input usecase.RegisterMerchantInput) (*usecase.RegisterOutput, error) {
	return srv.executeRegistration(ctx, &registrationConfig{
		Email:    input.Email,
		Password: input.Password,
		UserType: entity.UserTypeMerchant,
		BuildUser: func(passwordHash, confirmTokenHash string, confirmExpiry time.Time) *entity.User {
			return &entity.User{
				Email:            input.Email,
				PasswordHash:     passwordHash,
				UserType:         entity.UserTypeMerchant,
				StoreName:        input.StoreName,
				PhoneNumber:      input.PhoneNumber,
				ConfirmTokenHash: confirmTokenHash,
				ConfirmExpiresAt: confirmExpiry,
				CreatedAt:        time.Now().UTC(),
				UpdatedAt:        time.Now().UTC(),
			}
		},
	})
}

// RegisterEndUser creates an unconfirmed shopper account and mails the
// confirmation link.
func (srv *authService) RegisterEndUser(ctx context.Context, input usecase.RegisterEndUserInput) (*usecase.RegisterOutput, error) {
	return srv.executeRegistration(ctx, &registrationConfig{
		Email:    input.Email,
		Password: input.Password,
		UserType: entity.UserTypeEndUser,
		BuildUser: func(passwordHash, confirmTokenHash string, confirmExpiry time.Time) *entity.User {
			return &entity.User{
				Email:            input.Email,
				PasswordHash:     passwordHash,
				UserType:         entity.UserTypeEndUser,
				ConfirmTokenHash: confirmTokenHash,
				ConfirmExpiresAt: confirmExpiry,
				CreatedAt:        time.Now().UTC(),
				UpdatedAt:        time.Now().UTC(),
			}
		},
	})
}

func (srv *authService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration",
		slog.Any("userType", cfg.UserType),
		slog.String("email", cfg.Email))

	if err := srv.hasher.ValidatePolicy(cfg.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration",
			slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	rawToken, tokenHash, err := srv.opaqueTokens.Issue()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue confirmation token")
	}

	newUser := cfg.BuildUser(passwordHash, tokenHash, time.Now().UTC().Add(srv.confirmTokenTTL))
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user during registration",
			slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.metrics.RegistrationTotal.WithLabelValues(cfg.UserType.Role()).Inc()

	// A mail outage must not strand the account: the user can request a
	// fresh link through resend-confirmation once delivery recovers.
	if err := srv.sendConfirmationEmail(ctx, newUser, rawToken); err != nil {
		srv.log(ctx).Error("Failed to send confirmation email",
			slog.Int("userID", newUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Int("userID", newUser.ID))

	return &usecase.RegisterOutput{UserID: newUser.ID, Email: newUser.Email}, nil
}

// Login verifies credentials and issues a signed access token. Unknown email
// and wrong password produce the same error so the endpoint does not reveal
// whether an account exists.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			srv.metrics.LoginTotal.WithLabelValues("failure").Inc()

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
		}

		srv.log(ctx).Error("Failed to load user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.metrics.LoginTotal.WithLabelValues("failure").Inc()

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	if !user.EmailConfirmed {
		srv.metrics.LoginTotal.WithLabelValues("unconfirmed").Inc()

		return nil, domainerrors.ErrEmailNotConfirmed.WrapMessage("login rejected")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Int("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.metrics.LoginTotal.WithLabelValues("success").Inc()
	srv.log(ctx).Debug("Login succeeded", slog.Int("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().UTC().Add(srv.accessTTL),
	}, nil
}

// ConfirmEmail redeems a confirmation token: the account transitions to
// Confirmed and receives its role claim.
func (srv *authService) ConfirmEmail(ctx context.Context, input usecase.ConfirmEmailInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return domainerrors.ErrInvalidToken.WrapMessage("email confirmation rejected")
		}

		return errors.Wrap(err, "failed to load user for email confirmation")
	}

	if user.EmailConfirmed || user.ConfirmTokenHash == "" {
		return domainerrors.ErrInvalidToken.WrapMessage("email confirmation rejected")
	}

	if time.Now().UTC().After(user.ConfirmExpiresAt) {
		return domainerrors.ErrInvalidToken.WrapMessage("email confirmation rejected")
	}

	if !srv.opaqueTokens.Matches(input.Token, user.ConfirmTokenHash) {
		srv.log(ctx).Warn("Confirmation token mismatch", slog.Int("userID", user.ID))

		return domainerrors.ErrInvalidToken.WrapMessage("email confirmation rejected")
	}

	user.EmailConfirmed = true
	user.Role = user.UserType.Role()
	user.ConfirmTokenHash = ""
	user.ConfirmExpiresAt = time.Time{}
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist email confirmation")
	}

	srv.log(ctx).Info("Email confirmed", slog.Int("userID", user.ID), slog.String("role", user.Role))

	return nil
}

// ResendEmailConfirmation issues a fresh confirmation token. Unknown and
// already-confirmed emails succeed silently so the endpoint does not reveal
// account state.
func (srv *authService) ResendEmailConfirmation(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load user for confirmation resend")
	}

	if user.EmailConfirmed {
		return nil
	}

	rawToken, tokenHash, err := srv.opaqueTokens.Issue()
	if err != nil {
		return errors.Wrap(err, "failed to issue confirmation token")
	}

	user.ConfirmTokenHash = tokenHash
	user.ConfirmExpiresAt = time.Now().UTC().Add(srv.confirmTokenTTL)
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist confirmation token")
	}

	// A mail outage must not change the response: failing only for known
	// emails would reveal the account existence this endpoint hides.
	if err := srv.sendConfirmationEmail(ctx, user, rawToken); err != nil {
		srv.log(ctx).Error("Failed to send confirmation email",
			slog.Int("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// ForgotPassword issues a reset token. Unknown emails succeed silently.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	rawToken, tokenHash, err := srv.opaqueTokens.Issue()
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	user.ResetTokenHash = tokenHash
	user.ResetExpiresAt = time.Now().UTC().Add(srv.resetTokenTTL)
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist reset token")
	}

	// Same disclosure rule as the confirmation resend: the caller sees
	// success whether or not the mail went out.
	if err := srv.sendResetEmail(ctx, user, rawToken); err != nil {
		srv.log(ctx).Error("Failed to send reset email",
			slog.Int("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// ResetPassword redeems a reset token and replaces the stored password hash.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return domainerrors.ErrInvalidToken.WrapMessage("password reset rejected")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	if user.ResetTokenHash == "" || time.Now().UTC().After(user.ResetExpiresAt) {
		return domainerrors.ErrInvalidToken.WrapMessage("password reset rejected")
	}

	if !srv.opaqueTokens.Matches(input.Token, user.ResetTokenHash) {
		srv.log(ctx).Warn("Reset token mismatch", slog.Int("userID", user.ID))

		return domainerrors.ErrInvalidToken.WrapMessage("password reset rejected")
	}

	if err := srv.hasher.ValidatePolicy(input.NewPassword); err != nil {
		return err
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = passwordHash
	user.ResetTokenHash = ""
	user.ResetExpiresAt = time.Time{}
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Int("userID", user.ID))

	return nil
}

func (srv *authService) sendConfirmationEmail(ctx context.Context, user *entity.User, rawToken string) error {
	link := fmt.Sprintf("%s/api/v1/account/confirm-email?userId=%d&token=%s",
		srv.appURL, user.ID, url.QueryEscape(rawToken))

	body := fmt.Sprintf(
		`<p>Welcome! Please confirm your email address by following this link:</p><p><a href="%s">Confirm email</a></p>`,
		link)

	return srv.mailer.Send(ctx, user.Email, "Confirm your email", body)
}

func (srv *authService) sendResetEmail(ctx context.Context, user *entity.User, rawToken string) error {
	link := fmt.Sprintf("%s/api/v1/account/reset-password?userId=%d&token=%s",
		srv.appURL, user.ID, url.QueryEscape(rawToken))

	body := fmt.Sprintf(
		`<p>A password reset was requested for your account. Follow this link to choose a new password:</p><p><a href="%s">Reset password</a></p>`,
		link)

	return srv.mailer.Send(ctx, user.Email, "Reset your password", body)
}
