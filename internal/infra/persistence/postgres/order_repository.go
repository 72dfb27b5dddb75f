package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of the order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order header and writes the assigned identity back.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) (int, error) {
	if order == nil {
		return 0, repository.ErrInvalidEntity
	}

	orderModel := model.OrderFromEntity(order)
	if err := repo.db.WithContext(ctx).Create(&orderModel).Error; err != nil {
		return 0, translateWriteError(err, "failed to create order")
	}

	order.SetEntityID(orderModel.RecordID())

	return orderModel.RecordID(), nil
}

// CreateDetails persists the detail lines in a single batch insert.
func (repo *orderRepository) CreateDetails(ctx context.Context, details []*entity.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}

	detailModels := make([]model.OrderDetailModel, 0, len(details))
	for _, detail := range details {
		if detail == nil {
			return repository.ErrInvalidEntity
		}

		detailModels = append(detailModels, model.OrderDetailFromEntity(detail))
	}

	if err := repo.db.WithContext(ctx).Create(&detailModels).Error; err != nil {
		return translateWriteError(err, "failed to create order details")
	}

	for i, detail := range details {
		detail.SetEntityID(detailModels[i].RecordID())
	}

	return nil
}

// FindByID retrieves an order together with its detail lines.
func (repo *orderRepository) FindByID(ctx context.Context, id int) (*entity.Order, error) {
	if id <= 0 {
		return nil, repository.ErrInvalidID
	}

	var orderModel model.OrderModel
	err := repo.db.WithContext(ctx).Preload("Details").First(&orderModel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderModel.ToEntity(), nil
}
