// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"ridehail/internal/domain/entity"
)

// ErrTicketNotFound is returned when no usable reset ticket matches the lookup.
// It covers "never issued", "expired" and "already consumed" uniformly.
var ErrTicketNotFound = errors.New("password reset ticket not found")

// ResetTicketRepository manages password-reset tickets. Tickets are stored by
// hash, expire, and are consumed at most once.
type ResetTicketRepository interface {
	// Create persists a freshly issued ticket.
	Create(ctx context.Context, ticket *entity.PasswordResetTicket) error

	// Consume atomically claims the ticket matching the hash, provided it is
	// neither expired nor already consumed, and returns it. The claim is a
	// single conditional update so two concurrent resets cannot both spend the
	// same ticket. Returns ErrTicketNotFound when no usable ticket matched.
	Consume(ctx context.Context, ticketHash string, now time.Time) (*entity.PasswordResetTicket, error)

	// DeleteExpired removes tickets past their expiry. Called periodically for cleanup.
	DeleteExpired(ctx context.Context, now time.Time) error
}
