package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModelModel mirrors the 'vehicle_models' table.
type VehicleModelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Brand     string    `gorm:"type:varchar(100);not null"`
	Year      int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModelModel) TableName() string {
	return "vehicle_models"
}

// VehicleRecordModel mirrors the 'vehicles' table.
// ModelID carries a unique index: one vehicle per model (1:1).
type VehicleRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Plate     string    `gorm:"type:varchar(20);unique;not null"`
	ModelID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleRecordModel) TableName() string {
	return "vehicles"
}

// DriverVehicleModel mirrors the 'driver_vehicles' join table (M:N).
type DriverVehicleModel struct {
	DriverID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverVehicleModel) TableName() string {
	return "driver_vehicles"
}

// TripModel mirrors the 'trips' table. Driver and passenger rows cascade.
type TripModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DriverID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PassengerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Origin      string    `gorm:"type:varchar(255);not null"`
	Destination string    `gorm:"type:varchar(255);not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Fare        float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}
