package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ridehail/internal/domain/entity"
)

// AccessClaims defines the custom claims carried by access tokens.
type AccessClaims struct {
	AccountID uuid.UUID
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenService issues and validates the two credential kinds of the system.
//
// Access tokens are short-lived signed JWTs validated without a store lookup.
// Refresh tokens and reset tickets are opaque random values; they carry no
// identity and must be resolved against the store, never decoded.
type TokenService interface {
	// IssueAccessToken signs a claims set {sub, role, iat, exp} for the account.
	IssueAccessToken(accountID uuid.UUID, role entity.Role) (string, error)

	// ValidateAccessToken verifies signature and expiry. Signature mismatch,
	// expiry and malformed structure all produce the same error so the caller
	// cannot distinguish the cause.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// NewOpaqueToken returns a cryptographically random URL-safe string with at
	// least 128 bits of entropy.
	NewOpaqueToken() (string, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration

	// ResetTicketTTL returns the configured password-reset ticket lifetime.
	ResetTicketTTL() time.Duration
}
