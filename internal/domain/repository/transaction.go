package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so all operations inside Execute share a single database connection.
type RepositoryFactory interface {
	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository

	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository

	// OrderDetails returns the detail-line CRUD repository bound to the
	// current transaction.
	OrderDetails() CRUDRepository[*entity.OrderDetail]
}
