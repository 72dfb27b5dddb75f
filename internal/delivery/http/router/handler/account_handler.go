package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

// emailRequest is the shared payload for the operations addressed by email only.
type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AccountHandler serves the account-lifecycle endpoints.
type AccountHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(authUsecase usecase.AuthUsecase) *AccountHandler {
	return &AccountHandler{authUsecase: authUsecase}
}

// RegisterMerchant handles POST /account/register-merchant.
func (h *AccountHandler) RegisterMerchant(c echo.Context) error {
	var input usecase.RegisterMerchantInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.authUsecase.RegisterMerchant(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, out)
}

// RegisterEndUser handles POST /account/register-end-user.
func (h *AccountHandler) RegisterEndUser(c echo.Context) error {
	var input usecase.RegisterEndUserInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.authUsecase.RegisterEndUser(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, out)
}

// Login handles POST /account/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	out, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}

// ConfirmEmail handles GET and POST /account/confirm-email?userId=&token=.
// The GET form is what the mailed link hits.
func (h *AccountHandler) ConfirmEmail(c echo.Context) error {
	var input usecase.ConfirmEmailInput
	if err := echo.QueryParamsBinder(c).
		Int("userId", &input.UserID).
		String("token", &input.Token).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("userId and token are required")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUsecase.ConfirmEmail(c.Request().Context(), input); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "confirmed"})
}

// ResendConfirmation handles POST /account/resend-confirmation.
func (h *AccountHandler) ResendConfirmation(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUsecase.ResendEmailConfirmation(c.Request().Context(), input.Email); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "sent"})
}

// ForgotPassword handles POST /account/forgot-password.
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUsecase.ForgotPassword(c.Request().Context(), input.Email); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "sent"})
}

// ResetPassword handles POST /account/reset-password.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.authUsecase.ResetPassword(c.Request().Context(), input); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "reset"})
}
