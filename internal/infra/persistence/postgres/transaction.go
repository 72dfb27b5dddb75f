package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager using GORM's transaction support.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager backed by the given connection.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Repositories obtained
// from the factory all share the transaction handle, so a returned error rolls
// back every write made through them.
func (manager *gormTransactionManager) Execute(
	ctx context.Context,
	fn func(txRepoFactory repository.RepositoryFactory) error,
) error {
	return manager.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (factory *gormRepositoryFactory) Users() repository.UserRepository {
	return NewUserRepository(factory.tx)
}

func (factory *gormRepositoryFactory) Orders() repository.OrderRepository {
	return NewOrderRepository(factory.tx)
}

func (factory *gormRepositoryFactory) OrderDetails() repository.CRUDRepository[*entity.OrderDetail] {
	return NewCRUDRepository[*entity.OrderDetail, model.OrderDetailModel](
		factory.tx,
		model.OrderDetailFromEntity,
	)
}
