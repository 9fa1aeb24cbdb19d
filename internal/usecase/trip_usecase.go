package usecase

import (
	"context"

	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTripInput defines the data required to record a trip.
type CreateTripInput struct {
	DriverID    uuid.UUID
	PassengerID uuid.UUID
	Origin      string
	Destination string
	Fare        float64
}

// UpdateTripInput replaces a trip's mutable attributes.
type UpdateTripInput struct {
	ID          uuid.UUID
	Origin      string
	Destination string
	Status      entity.TripStatus
	Fare        float64
}

// TripUsecase manages the trip ledger.
type TripUsecase interface {
	// CreateTrip records a trip between an existing driver and passenger.
	// New trips start in the requested status.
	CreateTrip(ctx context.Context, input *CreateTripInput) (*entity.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	ListTrips(ctx context.Context) ([]*entity.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Trip, error)
	ListTripsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*entity.Trip, error)
	UpdateTrip(ctx context.Context, input *UpdateTripInput) (*entity.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}
