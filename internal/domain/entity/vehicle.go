// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a registered car identified by its licence plate.
// It references its VehicleModel by id; the pairing is one-to-one, so a model
// can be assigned to at most one vehicle. Drivers are related many-to-many
// through a join table and are resolved by explicit lookups, never embedded
// back-pointers.
type Vehicle struct {
	ID        uuid.UUID
	Plate     string    // Licence plate, unique across vehicles.
	ModelID   uuid.UUID // The VehicleModel this vehicle is an instance of.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleModel describes a make and production year shared by exactly one vehicle.
type VehicleModel struct {
	ID        uuid.UUID
	Brand     string
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
