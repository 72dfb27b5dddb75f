package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/usecase"
)

type mockOrderDetailsUsecase struct {
	mock.Mock
}

func (m *mockOrderDetailsUsecase) CreateWithOrder(ctx context.Context, input usecase.CreateOrderDetailsInput) (*usecase.CreateOrderDetailsOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.CreateOrderDetailsOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderDetailsUsecase) GetOrder(ctx context.Context, id int) (*usecase.OrderOutput, error) {
	args := m.Called(ctx, id)
	if out := args.Get(0); out != nil {
		return out.(*usecase.OrderOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderDetailsUsecase) GetByID(ctx context.Context, id int) (usecase.OrderDetailOutput, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(usecase.OrderDetailOutput), args.Error(1)
}

func (m *mockOrderDetailsUsecase) GetAll(ctx context.Context, input usecase.ListInput) ([]usecase.OrderDetailOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).([]usecase.OrderDetailOutput), args.Error(1)
}

func (m *mockOrderDetailsUsecase) Update(ctx context.Context, id int, input usecase.OrderDetailOutput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *mockOrderDetailsUsecase) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderDetailsHandler_Create(t *testing.T) {
	service := new(mockOrderDetailsUsecase)
	service.On("CreateWithOrder", mock.Anything, usecase.CreateOrderDetailsInput{
		UserID:          4,
		DeliveryAddress: "12 Harbour Road",
		Details: []usecase.CreateOrderDetailInput{
			{ProductID: 1, Quantity: 2, Price: 9.5},
			{ProductID: 3, Quantity: 1, Price: 4},
		},
	}).Return(&usecase.CreateOrderDetailsOutput{OrderID: 42, Count: 2}, nil)

	h := NewOrderDetailsHandler(service)
	c, rec := newTestContext(http.MethodPost, "/order-details/create",
		`{"deliveryAddress":"12 Harbour Road","details":[{"productId":1,"quantity":2,"price":9.5},{"productId":3,"quantity":1,"price":4}]}`)
	c.Set(middleware.ContextKeyUserID, 4)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderId":42`)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	service.AssertExpectations(t)
}

func TestOrderDetailsHandler_CreateOwnerIsTheCaller(t *testing.T) {
	service := new(mockOrderDetailsUsecase)
	service.On("CreateWithOrder", mock.Anything, mock.MatchedBy(func(input usecase.CreateOrderDetailsInput) bool {
		return input.UserID == 7
	})).Return(&usecase.CreateOrderDetailsOutput{OrderID: 1, Count: 1}, nil)

	h := NewOrderDetailsHandler(service)
	// A userId smuggled into the body must not attribute the order to
	// someone else.
	c, _ := newTestContext(http.MethodPost, "/order-details/create",
		`{"userId":3,"details":[{"productId":1,"quantity":1,"price":2.5}]}`)
	c.Set(middleware.ContextKeyUserID, 7)

	require.NoError(t, h.Create(c))
	service.AssertExpectations(t)
}

func TestOrderDetailsHandler_CreateRequiresAuthenticatedCaller(t *testing.T) {
	service := new(mockOrderDetailsUsecase)

	h := NewOrderDetailsHandler(service)
	c, _ := newTestContext(http.MethodPost, "/order-details/create",
		`{"details":[{"productId":1,"quantity":1,"price":2.5}]}`)

	err := h.Create(c)
	require.Error(t, err)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, err))
	service.AssertNotCalled(t, "CreateWithOrder")
}

func TestOrderDetailsHandler_CreateRejectsEmptyLines(t *testing.T) {
	service := new(mockOrderDetailsUsecase)

	h := NewOrderDetailsHandler(service)
	c, _ := newTestContext(http.MethodPost, "/order-details/create",
		`{"details":[]}`)
	c.Set(middleware.ContextKeyUserID, 4)

	err := h.Create(c)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
	service.AssertNotCalled(t, "CreateWithOrder")
}

func TestOrderDetailsHandler_GetOrder(t *testing.T) {
	service := new(mockOrderDetailsUsecase)
	service.On("GetOrder", mock.Anything, 42).Return(&usecase.OrderOutput{
		ID:     42,
		UserID: 4,
		Details: []usecase.OrderDetailOutput{
			{ID: 1, OrderID: 42, ProductID: 1, Quantity: 2, Price: 9.5},
		},
	}, nil)

	h := NewOrderDetailsHandler(service)
	c, rec := newTestContext(http.MethodGet, "/order-details/get-order?id=42", "")

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderId":42`)
	service.AssertExpectations(t)
}

func TestOrderDetailsHandler_UpdateRejectsIDMismatch(t *testing.T) {
	service := new(mockOrderDetailsUsecase)

	h := NewOrderDetailsHandler(service)
	c, _ := newTestContext(http.MethodPut, "/order-details/6",
		`{"id":9,"orderId":42,"productId":1,"quantity":2,"price":9.5}`)
	c.SetParamNames("id")
	c.SetParamValues("6")

	err := h.Update(c)
	require.Error(t, err)
	assert.Equal(t, "ID_MISMATCH", errorCode(t, err))
	service.AssertNotCalled(t, "Update")
}
