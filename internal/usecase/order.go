package usecase

import (
	"context"
	"time"
)

// CreateOrderDetailInput is one order line in a composite order creation.
type CreateOrderDetailInput struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

// CreateOrderDetailsInput defines the payload for the composite create: one
// new order carrying every supplied detail line. UserID never comes from the
// request body; the delivery layer fills it from the authenticated caller.
type CreateOrderDetailsInput struct {
	UserID          int                      `json:"-" validate:"required,gt=0"`
	DeliveryAddress string                   `json:"deliveryAddress" validate:"omitempty,max=500"`
	Details         []CreateOrderDetailInput `json:"details" validate:"required,min=1,dive"`
}

// CreateOrderDetailsOutput reports the created order and how many detail
// lines were written, which always equals the input length on success.
type CreateOrderDetailsOutput struct {
	OrderID int `json:"orderId"`
	Count   int `json:"count"`
}

// OrderDetailOutput is the full detail-line representation. It doubles as
// the update payload for a single line.
type OrderDetailOutput struct {
	ID        int     `json:"id" validate:"omitempty,gte=0"`
	OrderID   int     `json:"orderId" validate:"required,gt=0"`
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

// OrderOutput is the full order representation with its detail lines.
type OrderOutput struct {
	ID              int                 `json:"id"`
	CreatedAt       time.Time           `json:"createdAt"`
	UserID          int                 `json:"userId"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Details         []OrderDetailOutput `json:"details"`
}

// OrderDetailsUsecase exposes the order-detail resource. Creation is the
// composite operation: it always writes a new order together with its lines
// in one transaction. The remaining operations act on individual lines.
type OrderDetailsUsecase interface {
	// CreateWithOrder creates one order plus all supplied detail lines
	// atomically and returns the line count.
	CreateWithOrder(ctx context.Context, input CreateOrderDetailsInput) (*CreateOrderDetailsOutput, error)

	// GetOrder retrieves an order aggregate with its lines.
	GetOrder(ctx context.Context, id int) (*OrderOutput, error)

	// GetByID retrieves a single detail line.
	GetByID(ctx context.Context, id int) (OrderDetailOutput, error)

	// GetAll retrieves one page of detail lines.
	GetAll(ctx context.Context, input ListInput) ([]OrderDetailOutput, error)

	// Update fully replaces a detail line.
	Update(ctx context.Context, id int, input OrderDetailOutput) error

	// Delete removes a detail line.
	Delete(ctx context.Context, id int) error
}

// ResourceID returns the id embedded in an update payload.
func (d OrderDetailOutput) ResourceID() int { return d.ID }
