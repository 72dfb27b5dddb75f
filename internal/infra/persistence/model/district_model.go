package model

import "backoffice/internal/domain/entity"

// DistrictModel mirrors the 'districts' table. CityID references cities.id.
type DistrictModel struct {
	ID     int    `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(100);not null"`
	Notes  string `gorm:"type:text"`
	CityID int    `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}

func (m DistrictModel) RecordID() int { return m.ID }

func (m DistrictModel) ToEntity() *entity.District {
	return &entity.District{
		ID:     m.ID,
		Name:   m.Name,
		Notes:  m.Notes,
		CityID: m.CityID,
	}
}

// DistrictFromEntity converts a domain District to its persistence model.
func DistrictFromEntity(data *entity.District) DistrictModel {
	return DistrictModel{
		ID:     data.ID,
		Name:   data.Name,
		Notes:  data.Notes,
		CityID: data.CityID,
	}
}
