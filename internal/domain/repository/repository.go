// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// Persistence sentinels. The application layer matches on these instead of
// database-specific errors.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned for non-positive identifiers.
	ErrInvalidID = errors.New("id must be greater than zero")
	// ErrInvalidEntity is returned when a nil entity is passed to a write operation.
	ErrInvalidEntity = errors.New("entity must not be nil")
)

// Entity is implemented by every persisted domain record. It replaces
// runtime reflection on an "Id" field with a compile-time identity accessor,
// which is what lets a single repository implementation serve every entity
// type.
type Entity interface {
	// EntityID returns the surrogate identity, zero when unassigned.
	EntityID() int

	// SetEntityID assigns the surrogate identity.
	SetEntityID(id int)
}

// ListQuery describes offset pagination plus optional sorting and eager
// loading for list and find operations. PageNumber is 1-based; the offset is
// (PageNumber-1)*PageSize. Bounds checking is the caller's responsibility —
// the usecase layer clamps before delegating.
type ListQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string   // Column name, empty for storage order.
	SortDesc   bool     // Descending when SortBy is set.
	Preloads   []string // Association names to eager-load.
}

// Condition is a filter predicate applied before sorting and pagination.
type Condition struct {
	Query string // e.g. "city_id = ?"
	Args  []any
}

// Where is a convenience constructor for Condition.
func Where(query string, args ...any) Condition {
	return Condition{Query: query, Args: args}
}

// CRUDRepository defines the standard persistence operations shared by all
// reference-data entities. A single generic implementation is instantiated
// once per entity type.
type CRUDRepository[E Entity] interface {
	// Create persists a new entity and returns the assigned identity.
	// The identity is also set on the entity itself.
	Create(ctx context.Context, entity E) (int, error)

	// FindByID retrieves a single entity. Returns ErrInvalidID for id <= 0
	// and ErrNotFound when the record is absent.
	FindByID(ctx context.Context, id int) (E, error)

	// List retrieves one page of entities.
	List(ctx context.Context, query ListQuery) ([]E, error)

	// Find retrieves one page of entities matching every condition.
	Find(ctx context.Context, query ListQuery, conds ...Condition) ([]E, error)

	// Update fully replaces the stored record with the given entity.
	Update(ctx context.Context, entity E) error

	// Delete removes the record by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int) error
}
