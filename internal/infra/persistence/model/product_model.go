package model

import (
	"time"

	"backoffice/internal/domain/entity"
)

// ProductModel mirrors the 'products' table. ParentProductID is a nullable
// self-reference for product variants.
type ProductModel struct {
	ID              int     `gorm:"primaryKey"`
	NameAr          string  `gorm:"type:varchar(255);not null"`
	NameEn          string  `gorm:"type:varchar(255)"`
	ParentProductID *int    `gorm:"index"`
	StoreID         int     `gorm:"not null;index"`
	SalePrice       float64 `gorm:"not null"`
	PurchasePrice   float64 `gorm:"not null"`
	ProductCode     string  `gorm:"type:varchar(100);not null"`
	Barcode         string  `gorm:"type:varchar(100);not null"`
	ExtraBarcode    string  `gorm:"type:varchar(100)"`
	TypeID          int     `gorm:"not null"`
	Photo           string  `gorm:"type:text"`
	CreatedAt       time.Time
	IsPublish       bool `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

func (m ProductModel) RecordID() int { return m.ID }

func (m ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:              m.ID,
		NameAr:          m.NameAr,
		NameEn:          m.NameEn,
		ParentProductID: m.ParentProductID,
		StoreID:         m.StoreID,
		SalePrice:       m.SalePrice,
		PurchasePrice:   m.PurchasePrice,
		ProductCode:     m.ProductCode,
		Barcode:         m.Barcode,
		ExtraBarcode:    m.ExtraBarcode,
		TypeID:          m.TypeID,
		Photo:           m.Photo,
		CreatedAt:       m.CreatedAt,
		IsPublish:       m.IsPublish,
	}
}

// ProductFromEntity converts a domain Product to its persistence model.
func ProductFromEntity(data *entity.Product) ProductModel {
	return ProductModel{
		ID:              data.ID,
		NameAr:          data.NameAr,
		NameEn:          data.NameEn,
		ParentProductID: data.ParentProductID,
		StoreID:         data.StoreID,
		SalePrice:       data.SalePrice,
		PurchasePrice:   data.PurchasePrice,
		ProductCode:     data.ProductCode,
		Barcode:         data.Barcode,
		ExtraBarcode:    data.ExtraBarcode,
		TypeID:          data.TypeID,
		Photo:           data.Photo,
		CreatedAt:       data.CreatedAt,
		IsPublish:       data.IsPublish,
	}
}
