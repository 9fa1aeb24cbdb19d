// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus tracks the lifecycle of a trip.
type TripStatus string

const (
	// TripStatusRequested is the initial state of a newly created trip.
	TripStatusRequested TripStatus = "requested"
	// TripStatusActive means the trip is underway.
	TripStatusActive TripStatus = "active"
	// TripStatusCompleted means the trip finished normally.
	TripStatusCompleted TripStatus = "completed"
	// TripStatusCancelled means the trip was abandoned before completion.
	TripStatusCancelled TripStatus = "cancelled"
)

// IsValid checks if the TripStatus is a known value.
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusRequested, TripStatusActive, TripStatusCompleted, TripStatusCancelled:
		return true
	default:
		return false
	}
}

// Trip is a single ride connecting a driver and a passenger.
// Both sides are referenced by account id.
type Trip struct {
	ID          uuid.UUID
	DriverID    uuid.UUID
	PassengerID uuid.UUID
	Origin      string
	Destination string
	Status      TripStatus
	Fare        float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
