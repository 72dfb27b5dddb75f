package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

type orderServiceFixtures struct {
	service    usecase.OrderDetailsUsecase
	orderRepo  *mockOrderRepository
	detailRepo *mockCRUDRepository[*entity.OrderDetail]
	txOrders   *mockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orderRepo := &mockOrderRepository{}
	detailRepo := &mockCRUDRepository[*entity.OrderDetail]{}
	txOrders := &mockOrderRepository{}
	txManager := &mockTransactionManager{
		factory: &mockRepositoryFactory{
			orders:       txOrders,
			orderDetails: detailRepo,
		},
	}

	service := NewOrderDetailsService(OrderDetailsServiceParams{
		TxManager:  txManager,
		OrderRepo:  orderRepo,
		DetailRepo: detailRepo,
		Metrics:    testMetrics,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:    service,
		orderRepo:  orderRepo,
		detailRepo: detailRepo,
		txOrders:   txOrders,
	}
}

func TestOrderService_CreateWithOrder(t *testing.T) {
	f := createTestOrderService(t)

	f.txOrders.On("Create", mock.Anything, mock.MatchedBy(func(order *entity.Order) bool {
		return order.UserID == 3 && !order.CreatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).SetEntityID(42)
	}).Return(42, nil)

	f.txOrders.On("CreateDetails", mock.Anything, mock.MatchedBy(func(details []*entity.OrderDetail) bool {
		if len(details) != 2 {
			return false
		}

		// Every line must point at the freshly created order.
		for _, detail := range details {
			if detail.OrderID != 42 {
				return false
			}
		}

		return details[0].ProductID == 5 && details[0].Quantity == 2
	})).Return(nil)

	out, err := f.service.CreateWithOrder(context.Background(), usecase.CreateOrderDetailsInput{
		UserID: 3,
		Details: []usecase.CreateOrderDetailInput{
			{ProductID: 5, Quantity: 2, Price: 10.0},
			{ProductID: 8, Quantity: 1, Price: 4.5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out.OrderID)
	assert.Equal(t, 2, out.Count)

	f.txOrders.AssertExpectations(t)
}

func TestOrderService_CreateWithOrderEmptyList(t *testing.T) {
	f := createTestOrderService(t)

	_, err := f.service.CreateWithOrder(context.Background(), usecase.CreateOrderDetailsInput{UserID: 3})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateWithOrderDetailFailureRollsBack(t *testing.T) {
	f := createTestOrderService(t)

	f.txOrders.On("Create", mock.Anything, mock.Anything).Return(42, nil)
	f.txOrders.On("CreateDetails", mock.Anything, mock.Anything).Return(errors.New("constraint"))

	_, err := f.service.CreateWithOrder(context.Background(), usecase.CreateOrderDetailsInput{
		UserID:  3,
		Details: []usecase.CreateOrderDetailInput{{ProductID: 5, Quantity: 2, Price: 10.0}},
	})
	assert.Error(t, err)
}

func TestOrderService_GetOrder(t *testing.T) {
	f := createTestOrderService(t)

	f.orderRepo.On("FindByID", mock.Anything, 42).Return(&entity.Order{
		ID:     42,
		UserID: 3,
		Details: []*entity.OrderDetail{
			{ID: 1, OrderID: 42, ProductID: 5, Quantity: 2, Price: 10.0},
		},
	}, nil)

	out, err := f.service.GetOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, out.ID)
	require.Len(t, out.Details, 1)
	assert.Equal(t, 5, out.Details[0].ProductID)
}

func TestOrderService_GetOrderNotFound(t *testing.T) {
	f := createTestOrderService(t)

	f.orderRepo.On("FindByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	_, err := f.service.GetOrder(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_LineCRUDDelegates(t *testing.T) {
	f := createTestOrderService(t)

	f.detailRepo.On("FindByID", mock.Anything, 1).
		Return(&entity.OrderDetail{ID: 1, OrderID: 42, ProductID: 5, Quantity: 2, Price: 10.0}, nil)

	dto, err := f.service.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 42, dto.OrderID)

	f.detailRepo.On("Update", mock.Anything, mock.MatchedBy(func(detail *entity.OrderDetail) bool {
		return detail.ID == 1 && detail.Quantity == 3
	})).Return(nil)

	err = f.service.Update(context.Background(), 1, usecase.OrderDetailOutput{
		ID: 999, OrderID: 42, ProductID: 5, Quantity: 3, Price: 10.0,
	})
	require.NoError(t, err)

	f.detailRepo.AssertExpectations(t)
}
