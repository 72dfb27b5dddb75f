package model

import (
	"time"

	"backoffice/internal/domain/entity"
)

// UserModel mirrors the 'users' table. Confirmation and reset columns hold
// SHA-256 hashes of the raw tokens, never the tokens themselves.
type UserModel struct {
	ID               int    `gorm:"primaryKey"`
	Email            string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     string `gorm:"type:varchar(255);not null"`
	UserType         int    `gorm:"not null"`
	StoreName        string `gorm:"type:varchar(100)"`
	PhoneNumber      string `gorm:"type:varchar(30)"`
	Role             string `gorm:"type:varchar(30)"`
	EmailConfirmed   bool   `gorm:"not null;default:false"`
	ConfirmTokenHash string `gorm:"type:varchar(64)"`
	ConfirmExpiresAt time.Time
	ResetTokenHash   string `gorm:"type:varchar(64)"`
	ResetExpiresAt   time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m UserModel) RecordID() int { return m.ID }

func (m UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:               m.ID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		UserType:         entity.UserType(m.UserType),
		StoreName:        m.StoreName,
		PhoneNumber:      m.PhoneNumber,
		Role:             m.Role,
		EmailConfirmed:   m.EmailConfirmed,
		ConfirmTokenHash: m.ConfirmTokenHash,
		ConfirmExpiresAt: m.ConfirmExpiresAt,
		ResetTokenHash:   m.ResetTokenHash,
		ResetExpiresAt:   m.ResetExpiresAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// UserFromEntity converts a domain User to its persistence model.
func UserFromEntity(data *entity.User) UserModel {
	return UserModel{
		ID:               data.ID,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		UserType:         int(data.UserType),
		StoreName:        data.StoreName,
		PhoneNumber:      data.PhoneNumber,
		Role:             data.Role,
		EmailConfirmed:   data.EmailConfirmed,
		ConfirmTokenHash: data.ConfirmTokenHash,
		ConfirmExpiresAt: data.ConfirmExpiresAt,
		ResetTokenHash:   data.ResetTokenHash,
		ResetExpiresAt:   data.ResetExpiresAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
