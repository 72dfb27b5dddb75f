package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// OrderRepository persists order aggregates. Detail lines are written only
// through their order so the aggregate never exists half-saved.
type OrderRepository interface {
	// Create persists the order header and returns its assigned identity.
	Create(ctx context.Context, order *entity.Order) (int, error)

	// CreateDetails persists the given detail lines. Every line must carry
	// its OrderID; callers run this in the same transaction as Create.
	CreateDetails(ctx context.Context, details []*entity.OrderDetail) error

	// FindByID retrieves an order with its detail lines.
	FindByID(ctx context.Context, id int) (*entity.Order, error)
}
