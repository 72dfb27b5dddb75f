package model

import (
	"time"

	"backoffice/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              int `gorm:"primaryKey"`
	CreatedAt       time.Time
	UserID          int                 `gorm:"not null;index"`
	DeliveryAddress string              `gorm:"type:text"`
	Details         []*OrderDetailModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

func (m OrderModel) RecordID() int { return m.ID }

func (m OrderModel) ToEntity() *entity.Order {
	details := make([]*entity.OrderDetail, 0, len(m.Details))
	for _, d := range m.Details {
		details = append(details, d.ToEntity())
	}

	return &entity.Order{
		ID:              m.ID,
		CreatedAt:       m.CreatedAt,
		UserID:          m.UserID,
		DeliveryAddress: m.DeliveryAddress,
		Details:         details,
	}
}

// OrderFromEntity converts a domain Order (without detail lines) to its
// persistence model. Detail lines are persisted separately so their OrderID
// can be assigned after the order id is known.
func OrderFromEntity(data *entity.Order) OrderModel {
	return OrderModel{
		ID:              data.ID,
		CreatedAt:       data.CreatedAt,
		UserID:          data.UserID,
		DeliveryAddress: data.DeliveryAddress,
	}
}

// OrderDetailModel mirrors the 'order_details' table.
type OrderDetailModel struct {
	ID        int     `gorm:"primaryKey"`
	OrderID   int     `gorm:"not null;index"`
	ProductID int     `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
	Price     float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}

func (m OrderDetailModel) RecordID() int { return m.ID }

func (m OrderDetailModel) ToEntity() *entity.OrderDetail {
	return &entity.OrderDetail{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
	}
}

// OrderDetailFromEntity converts a domain OrderDetail to its persistence model.
func OrderDetailFromEntity(data *entity.OrderDetail) OrderDetailModel {
	return OrderDetailModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}
