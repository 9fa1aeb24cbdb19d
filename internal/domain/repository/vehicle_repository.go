// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for fleet persistence.
var (
	// ErrVehicleNotFound is returned when a vehicle is not found.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrModelNotFound is returned when a vehicle model is not found.
	ErrModelNotFound = errors.New("vehicle model not found")
	// ErrDuplicatePlate is returned when a licence plate is already registered.
	ErrDuplicatePlate = errors.New("plate already registered")
	// ErrModelAssigned is returned when a model is already paired with a vehicle.
	ErrModelAssigned = errors.New("model already assigned to a vehicle")
	// ErrAssignmentNotFound is returned when a driver/vehicle link does not exist.
	ErrAssignmentNotFound = errors.New("driver is not assigned to vehicle")
)

// VehicleRepository persists vehicles and the driver/vehicle join table.
type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindByModelID(ctx context.Context, modelID uuid.UUID) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)

	// Create persists a new vehicle. The plate unique constraint and the
	// model-id unique constraint (the 1:1 vehicle/model pairing) are enforced
	// at the store boundary.
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AssignDriver links a driver to a vehicle; re-assigning is a no-op.
	AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error
	// UnassignDriver removes the link; returns ErrAssignmentNotFound when absent.
	UnassignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error
	// ListByDriver returns all vehicles linked to a driver.
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error)
	// ListDriverIDs returns the ids of all drivers linked to a vehicle.
	// Accounts are resolved by the caller through AccountRepository.
	ListDriverIDs(ctx context.Context, vehicleID uuid.UUID) ([]uuid.UUID, error)
}

// VehicleModelRepository persists vehicle models.
type VehicleModelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error)
	List(ctx context.Context) ([]*entity.VehicleModel, error)
	Create(ctx context.Context, model *entity.VehicleModel) error
	Update(ctx context.Context, model *entity.VehicleModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
