package model

import "backoffice/internal/domain/entity"

// BranchModel mirrors the 'branches' table.
type BranchModel struct {
	ID          int     `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	ManagerName string  `gorm:"type:varchar(100)"`
	PhoneNumber string  `gorm:"type:varchar(30)"`
	Address     string  `gorm:"type:text"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	CityID      int     `gorm:"not null;index"`
	DistrictID  int     `gorm:"not null;index"`
	StoreID     int     `gorm:"not null;index"`
	IsPublish   bool    `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (BranchModel) TableName() string {
	return "branches"
}

func (m BranchModel) RecordID() int { return m.ID }

func (m BranchModel) ToEntity() *entity.Branch {
	return &entity.Branch{
		ID:          m.ID,
		Name:        m.Name,
		ManagerName: m.ManagerName,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		CityID:      m.CityID,
		DistrictID:  m.DistrictID,
		StoreID:     m.StoreID,
		IsPublish:   m.IsPublish,
	}
}

// BranchFromEntity converts a domain Branch to its persistence model.
func BranchFromEntity(data *entity.Branch) BranchModel {
	return BranchModel{
		ID:          data.ID,
		Name:        data.Name,
		ManagerName: data.ManagerName,
		PhoneNumber: data.PhoneNumber,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CityID:      data.CityID,
		DistrictID:  data.DistrictID,
		StoreID:     data.StoreID,
		IsPublish:   data.IsPublish,
	}
}
