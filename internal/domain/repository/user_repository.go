package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// UserRepository defines the standard operations for account persistence.
// It is the explicit user store backing the auth flow; password hashing and
// token primitives live in domain services, not here.
type UserRepository interface {
	// FindByID retrieves a single user. Returns ErrNotFound when absent.
	FindByID(ctx context.Context, id int) (*entity.User, error)

	// FindByEmail retrieves a single user by email. Returns ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A duplicate email surfaces as a domain
	// conflict error.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user record.
	Update(ctx context.Context, user *entity.User) error
}
