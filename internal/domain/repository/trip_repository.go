// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTripNotFound is returned when a trip is not found.
var ErrTripNotFound = errors.New("trip not found")

// TripRepository persists trips. Trips reference their driver and passenger by
// account id; cascade deletion follows the account rows.
type TripRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)
	List(ctx context.Context) ([]*entity.Trip, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Trip, error)
	ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*entity.Trip, error)
	Create(ctx context.Context, trip *entity.Trip) error
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
}
