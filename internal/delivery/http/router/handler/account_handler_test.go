package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) RegisterMerchant(ctx context.Context, input usecase.RegisterMerchantInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.RegisterOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) RegisterEndUser(ctx context.Context, input usecase.RegisterEndUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.RegisterOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.LoginOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) ConfirmEmail(ctx context.Context, input usecase.ConfirmEmailInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockAuthUsecase) ResendEmailConfirmation(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthUsecase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func TestAccountHandler_RegisterMerchant(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("RegisterMerchant", mock.Anything, usecase.RegisterMerchantInput{
		Email:       "owner@example.com",
		Password:    "s3cret!",
		StoreName:   "Corner Store",
		PhoneNumber: "+351911222333",
	}).Return(&usecase.RegisterOutput{UserID: 11, Email: "owner@example.com"}, nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodPost, "/account/register-merchant",
		`{"email":"owner@example.com","password":"s3cret!","storeName":"Corner Store","phoneNumber":"+351911222333"}`)

	require.NoError(t, h.RegisterMerchant(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":11`)
	auth.AssertExpectations(t)
}

func TestAccountHandler_RegisterMerchantRejectsShortStoreName(t *testing.T) {
	auth := new(mockAuthUsecase)

	h := NewAccountHandler(auth)
	c, _ := newTestContext(http.MethodPost, "/account/register-merchant",
		`{"email":"owner@example.com","password":"s3cret!","storeName":"abc","phoneNumber":"+351911222333"}`)

	err := h.RegisterMerchant(c)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
	auth.AssertNotCalled(t, "RegisterMerchant")
}

func TestAccountHandler_RegisterEndUser(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("RegisterEndUser", mock.Anything, usecase.RegisterEndUserInput{
		Email:    "shopper@example.com",
		Password: "s3cret!",
	}).Return(&usecase.RegisterOutput{UserID: 12, Email: "shopper@example.com"}, nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodPost, "/account/register-end-user",
		`{"email":"shopper@example.com","password":"s3cret!"}`)

	require.NoError(t, h.RegisterEndUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":12`)
}

func TestAccountHandler_Login(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	auth := new(mockAuthUsecase)
	auth.On("Login", mock.Anything, usecase.LoginInput{Email: "owner@example.com", Password: "s3cret!"}).
		Return(&usecase.LoginOutput{AccessToken: "signed-jwt", ExpiresAt: expiry}, nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodPost, "/account/login",
		`{"email":"owner@example.com","password":"s3cret!"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"signed-jwt"`)
}

func TestAccountHandler_LoginPropagatesInvalidCredentials(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewAccountHandler(auth)
	c, _ := newTestContext(http.MethodPost, "/account/login",
		`{"email":"owner@example.com","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, err))
}

func TestAccountHandler_ConfirmEmailFromLink(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("ConfirmEmail", mock.Anything, usecase.ConfirmEmailInput{UserID: 11, Token: "raw-token"}).
		Return(nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodGet, "/account/confirm-email?userId=11&token=raw-token", "")

	require.NoError(t, h.ConfirmEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
	auth.AssertExpectations(t)
}

func TestAccountHandler_ConfirmEmailRejectsMissingParams(t *testing.T) {
	auth := new(mockAuthUsecase)

	h := NewAccountHandler(auth)
	c, _ := newTestContext(http.MethodGet, "/account/confirm-email?userId=11", "")

	err := h.ConfirmEmail(c)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
	auth.AssertNotCalled(t, "ConfirmEmail")
}

func TestAccountHandler_ResendConfirmation(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("ResendEmailConfirmation", mock.Anything, "owner@example.com").Return(nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodPost, "/account/resend-confirmation",
		`{"email":"owner@example.com"}`)

	require.NoError(t, h.ResendConfirmation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"sent"`)
}

func TestAccountHandler_ForgotPassword(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("ForgotPassword", mock.Anything, "owner@example.com").Return(nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodPost, "/account/forgot-password",
		`{"email":"owner@example.com"}`)

	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"sent"`)
}

func TestAccountHandler_ResetPassword(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("ResetPassword", mock.Anything, usecase.ResetPasswordInput{
		UserID:      11,
		Token:       "raw-token",
		NewPassword: "n3w-secret",
	}).Return(nil)

	h := NewAccountHandler(auth)
	c, rec := newTestContext(http.MethodPost, "/account/reset-password",
		`{"userId":11,"token":"raw-token","newPassword":"n3w-secret"}`)

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"reset"`)
	auth.AssertExpectations(t)
}

func TestAccountHandler_ResetPasswordPropagatesInvalidToken(t *testing.T) {
	auth := new(mockAuthUsecase)
	auth.On("ResetPassword", mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidToken)

	h := NewAccountHandler(auth)
	c, _ := newTestContext(http.MethodPost, "/account/reset-password",
		`{"userId":11,"token":"stale","newPassword":"n3w-secret"}`)

	err := h.ResetPassword(c)
	require.Error(t, err)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, err))
}
