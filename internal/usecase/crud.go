// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// ListInput carries offset pagination for list operations. Values are
// clamped by the service layer, so handlers can pass query parameters
// through unchecked.
type ListInput struct {
	PageNumber int
	PageSize   int
}

// CRUDUsecase defines the standard operations exposed for every
// reference-data resource. C is the creation payload (no identity), D the
// full resource representation.
type CRUDUsecase[C any, D any] interface {
	// Create persists a new resource and returns its assigned id.
	Create(ctx context.Context, input C) (int, error)

	// GetByID retrieves one resource.
	GetByID(ctx context.Context, id int) (D, error)

	// GetAll retrieves one page of resources.
	GetAll(ctx context.Context, input ListInput) ([]D, error)

	// Update fully replaces the resource identified by id. Any identity
	// carried inside the payload is overwritten with id.
	Update(ctx context.Context, id int, input D) error

	// Delete removes the resource. Deleting an absent id reports not-found.
	Delete(ctx context.Context, id int) error
}
