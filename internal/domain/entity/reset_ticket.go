// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTicket authorizes a single password change for one account.
// The raw ticket value is handed to the requester once and only its SHA-256
// hash is kept at rest, the same treatment refresh tokens get.
type PasswordResetTicket struct {
	ID         uuid.UUID  // The unique ID for this ticket record.
	AccountID  uuid.UUID  // The account this ticket is bound to.
	TicketHash string     // SHA-256 hash of the raw ticket value.
	ExpiresAt  time.Time  // Hard expiry; a ticket is worthless past this instant.
	ConsumedAt *time.Time // Set when the ticket is spent. A ticket is single-use.
	CreatedAt  time.Time
}

// Usable reports whether the ticket can still authorize a password change.
func (t *PasswordResetTicket) Usable(now time.Time) bool {
	return t.ConsumedAt == nil && t.ExpiresAt.After(now)
}
