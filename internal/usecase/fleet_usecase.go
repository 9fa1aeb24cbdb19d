package usecase

import (
	"context"

	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateModelInput defines the data required to register a vehicle model.
type CreateModelInput struct {
	Brand string
	Year  int
}

// UpdateModelInput replaces a model's attributes.
type UpdateModelInput struct {
	ID    uuid.UUID
	Brand string
	Year  int
}

// CreateVehicleInput defines the data required to register a vehicle.
type CreateVehicleInput struct {
	Plate   string
	ModelID uuid.UUID
}

// UpdateVehicleInput replaces a vehicle's attributes.
type UpdateVehicleInput struct {
	ID      uuid.UUID
	Plate   string
	ModelID uuid.UUID
}

// FleetUsecase manages vehicle models, vehicles and driver assignments.
type FleetUsecase interface {
	CreateModel(ctx context.Context, input *CreateModelInput) (*entity.VehicleModel, error)
	GetModel(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error)
	ListModels(ctx context.Context) ([]*entity.VehicleModel, error)
	UpdateModel(ctx context.Context, input *UpdateModelInput) (*entity.VehicleModel, error)
	DeleteModel(ctx context.Context, id uuid.UUID) error

	// CreateVehicle registers a vehicle for an existing model. Each model is
	// paired with at most one vehicle.
	CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*entity.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, input *UpdateVehicleInput) (*entity.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	// AssignDriver links a driver account to a vehicle.
	AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error
	UnassignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error
	ListVehiclesByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Vehicle, error)
	ListDriversByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Account, error)
}
