package model

import "backoffice/internal/domain/entity"

// CurrencyModel mirrors the 'currencies' table.
type CurrencyModel struct {
	ID           int     `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Symbol       string  `gorm:"type:varchar(10);not null"`
	ExchangeRate float64 `gorm:"not null"`
	IsPrimary    bool    `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (CurrencyModel) TableName() string {
	return "currencies"
}

func (m CurrencyModel) RecordID() int { return m.ID }

func (m CurrencyModel) ToEntity() *entity.Currency {
	return &entity.Currency{
		ID:           m.ID,
		Name:         m.Name,
		Symbol:       m.Symbol,
		ExchangeRate: m.ExchangeRate,
		IsPrimary:    m.IsPrimary,
	}
}

// CurrencyFromEntity converts a domain Currency to its persistence model.
func CurrencyFromEntity(data *entity.Currency) CurrencyModel {
	return CurrencyModel{
		ID:           data.ID,
		Name:         data.Name,
		Symbol:       data.Symbol,
		ExchangeRate: data.ExchangeRate,
		IsPrimary:    data.IsPrimary,
	}
}
