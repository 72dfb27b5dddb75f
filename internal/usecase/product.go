package usecase

import "time"

// CreateProductInput defines the payload for creating a product.
type CreateProductInput struct {
	NameAr          string  `json:"nameAr" validate:"required,max=200"`
	NameEn          string  `json:"nameEn" validate:"required,max=200"`
	ParentProductID *int    `json:"parentProductId" validate:"omitempty,gt=0"`
	StoreID         int     `json:"storeId" validate:"required,gt=0"`
	SalePrice       float64 `json:"salePrice" validate:"required,gt=0"`
	PurchasePrice   float64 `json:"purchasePrice" validate:"required,gt=0"`
	ProductCode     string  `json:"productCode" validate:"required,max=50"`
	Barcode         string  `json:"barcode" validate:"required,max=50"`
	ExtraBarcode    string  `json:"extraBarcode" validate:"omitempty,max=50"`
	TypeID          int     `json:"typeId" validate:"required,gt=0"`
	Photo           string  `json:"photo" validate:"omitempty,max=500"`
	IsPublish       bool    `json:"isPublish"`
}

// ProductOutput is the full product representation.
type ProductOutput struct {
	ID              int       `json:"id" validate:"omitempty,gte=0"`
	NameAr          string    `json:"nameAr" validate:"required,max=200"`
	NameEn          string    `json:"nameEn" validate:"required,max=200"`
	ParentProductID *int      `json:"parentProductId" validate:"omitempty,gt=0"`
	StoreID         int       `json:"storeId" validate:"required,gt=0"`
	SalePrice       float64   `json:"salePrice" validate:"required,gt=0"`
	PurchasePrice   float64   `json:"purchasePrice" validate:"required,gt=0"`
	ProductCode     string    `json:"productCode" validate:"required,max=50"`
	Barcode         string    `json:"barcode" validate:"required,max=50"`
	ExtraBarcode    string    `json:"extraBarcode" validate:"omitempty,max=50"`
	TypeID          int       `json:"typeId" validate:"required,gt=0"`
	Photo           string    `json:"photo" validate:"omitempty,max=500"`
	CreatedAt       time.Time `json:"createdAt"`
	IsPublish       bool      `json:"isPublish"`
}

// ProductUsecase exposes product CRUD operations to the delivery layer.
type ProductUsecase = CRUDUsecase[CreateProductInput, ProductOutput]

// ResourceID returns the id embedded in an update payload.
func (d ProductOutput) ResourceID() int { return d.ID }
