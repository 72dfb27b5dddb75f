package entity

import "time"

// Product is a catalog item belonging to a merchant store. A product may be
// a variant of another product via ParentProductID (nil for standalone
// products).
type Product struct {
	ID              int
	NameAr          string
	NameEn          string
	ParentProductID *int
	StoreID         int
	SalePrice       float64
	PurchasePrice   float64
	ProductCode     string
	Barcode         string
	ExtraBarcode    string
	TypeID          int
	Photo           string
	CreatedAt       time.Time
	IsPublish       bool
}

func (p *Product) EntityID() int      { return p.ID }
func (p *Product) SetEntityID(id int) { p.ID = id }
