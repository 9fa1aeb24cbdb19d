package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	// The single live refresh token for the account, stored as a SHA-256 hash.
	// NULL means no active session.
	RefreshTokenHash      *string `gorm:"type:varchar(255);uniqueIndex"`
	RefreshTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	DriverProfile    *DriverProfileModel    `gorm:"foreignKey:AccountID"`
	PassengerProfile *PassengerProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// DriverProfileModel mirrors the 'driver_profiles' table. AccountID references accounts.id.
type DriverProfileModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Licence   string    `gorm:"type:varchar(50);not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverProfileModel) TableName() string {
	return "driver_profiles"
}

// PassengerProfileModel mirrors the 'passenger_profiles' table. AccountID references accounts.id.
type PassengerProfileModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone     string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PassengerProfileModel) TableName() string {
	return "passenger_profiles"
}
