// Package model contains the GORM persistence models and their mappers to
// and from the pure domain entities.
package model

import "backoffice/internal/domain/entity"

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

func (m CityModel) RecordID() int { return m.ID }

func (m CityModel) ToEntity() *entity.City {
	return &entity.City{
		ID:   m.ID,
		Name: m.Name,
	}
}

// CityFromEntity converts a domain City to its persistence model.
func CityFromEntity(data *entity.City) CityModel {
	return CityModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
