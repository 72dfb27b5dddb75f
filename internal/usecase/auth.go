package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// RegisterMerchantInput defines the data required to register a merchant account.
type RegisterMerchantInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	StoreName   string `json:"storeName" validate:"required,min=5,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=30"`
}

// RegisterEndUserInput defines the data required to register a shopper account.
type RegisterEndUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ConfirmEmailInput carries the confirmation link parameters.
type ConfirmEmailInput struct {
	UserID int    `json:"userId" validate:"required,gt=0"`
	Token  string `json:"token" validate:"required"`
}

// ResetPasswordInput carries the reset link parameters plus the new password.
type ResetPasswordInput struct {
	UserID      int    `json:"userId" validate:"required,gt=0"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's identity. The
// confirmation link itself travels by email, never in the response.
type RegisterOutput struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthUsecase defines the account-lifecycle operations. Operations that
// would reveal whether an email is registered succeed silently instead.
type AuthUsecase interface {
	RegisterMerchant(ctx context.Context, input RegisterMerchantInput) (*RegisterOutput, error)
	RegisterEndUser(ctx context.Context, input RegisterEndUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	ConfirmEmail(ctx context.Context, input ConfirmEmailInput) error
	ResendEmailConfirmation(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
