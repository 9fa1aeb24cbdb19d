// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
// The application layer handles these outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	// The store's unique constraint is the source of truth under concurrent
	// registrations; callers must not rely on a racy pre-check alone.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrRefreshTokenStale is returned when a conditional refresh-token rotation
	// finds the expected token already replaced or cleared. Exactly one of any
	// set of concurrent rotations for the same account can succeed.
	ErrRefreshTokenStale = errors.New("refresh token already rotated")
)

// AccountRepository defines the standard operations for account persistence.
// It is the sole writer of refresh-token state.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (lower-cased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByRefreshTokenHash resolves a presented refresh token back to its
	// account without trusting client-supplied identity.
	FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.Account, error)

	// Create persists a new account with its role profile.
	// Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, account *entity.Account) error

	// SetRefreshToken atomically replaces whatever refresh token the account
	// holds. An empty hash clears the session. Partial application is not a
	// possible outcome; the replace is a single statement.
	SetRefreshToken(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt *time.Time) error

	// RotateRefreshToken replaces the stored refresh token only if it still
	// equals oldHash. Returns ErrRefreshTokenStale when another writer got
	// there first, which is how concurrent refreshes for one account serialize
	// to a single winner.
	RotateRefreshToken(ctx context.Context, accountID uuid.UUID, oldHash, newHash string, expiresAt time.Time) error

	// UpdatePasswordHash replaces the stored credential digest.
	UpdatePasswordHash(ctx context.Context, accountID uuid.UUID, passwordHash string) error

	// ListByRole returns all accounts carrying the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)
}
