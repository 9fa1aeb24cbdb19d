// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity in the system. Drivers and passengers share this
// shape for authentication purposes; the role decides which profile is attached.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account, assigned at creation.
	Email        string    // Login handle, unique across accounts, stored lower-cased.
	Name         string    // Display name.
	Role         Role      // Driver, passenger or admin; embedded in issued access tokens.
	PasswordHash string    // bcrypt digest of the credential. Never the plaintext.

	// RefreshTokenHash holds the SHA-256 hash of the single currently valid
	// refresh token, or "" when no session is active. It is overwritten, never
	// appended, so at most one refresh token is live per account.
	RefreshTokenHash      string
	RefreshTokenExpiresAt *time.Time // Expiry of the stored refresh token, nil when none is set.

	DriverProfile    *DriverProfile    // nil unless the account is a driver.
	PassengerProfile *PassengerProfile // nil unless the account is a passenger.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DriverProfile holds data specific to driver accounts.
type DriverProfile struct {
	AccountID uuid.UUID // Foreign key linking this profile to its Account.
	Licence   string    // Driving licence number.
	Phone     string
	UpdatedAt time.Time
}

// PassengerProfile holds data specific to passenger accounts.
type PassengerProfile struct {
	AccountID uuid.UUID // Foreign key linking this profile to its Account.
	Phone     string
	UpdatedAt time.Time
}

// HasActiveRefreshToken reports whether the account currently carries a
// non-expired refresh token.
func (a *Account) HasActiveRefreshToken(now time.Time) bool {
	return a.RefreshTokenHash != "" &&
		a.RefreshTokenExpiresAt != nil &&
		a.RefreshTokenExpiresAt.After(now)
}
