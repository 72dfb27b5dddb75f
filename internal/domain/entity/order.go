package entity

import "time"

// Order is the aggregate root for a purchase. Detail lines reference it by
// OrderID and are only ever written together with their order.
type Order struct {
	ID              int
	CreatedAt       time.Time
	UserID          int // Owning end-user account.
	DeliveryAddress string
	Details         []*OrderDetail
}

func (o *Order) EntityID() int      { return o.ID }
func (o *Order) SetEntityID(id int) { o.ID = id }

// OrderDetail is a single product line inside an Order.
type OrderDetail struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	Price     float64 // Unit price at the time the order was placed.
}

func (d *OrderDetail) EntityID() int      { return d.ID }
func (d *OrderDetail) SetEntityID(id int) { d.ID = id }
