// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ridehail/config"
	"ridehail/internal/domain/entity"
	"ridehail/internal/domain/service"
)

// opaqueTokenBytes is the entropy of refresh tokens and reset tickets.
// 32 bytes is double the 128-bit floor the token contract requires.
const opaqueTokenBytes = 32

// ErrInvalidAccessToken is the single failure every access-token defect maps
// to. Callers cannot tell a bad signature from an expired or malformed token.
var ErrInvalidAccessToken = errors.New("invalid access token")

// tokenService implements service.TokenService with HS256 JWTs for access
// tokens and crypto/rand opaque strings for refresh tokens and reset tickets.
type tokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Secret == "" {
		return nil, errors.New("auth signing secret must be provided")
	}

	return &tokenService{
		secret:     []byte(cfg.Auth.Secret),
		issuer:     cfg.Auth.Issuer,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		resetTTL:   cfg.Auth.ResetTicketTTL,
		now:        time.Now,
	}, nil
}

// IssueAccessToken builds the claims set {sub, role, iat, exp} and signs it.
func (s *tokenService) IssueAccessToken(accountID uuid.UUID, role entity.Role) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}
	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken verifies the signature and expiry of an access token and
// returns its claims. Every defect collapses into ErrInvalidAccessToken.
func (s *tokenService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, ErrInvalidAccessToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidAccessToken
	}

	sub, _ := mapClaims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	roleStr, _ := mapClaims["role"].(string)
	role := entity.RoleFromString(roleStr)
	if !role.IsValid() {
		return nil, ErrInvalidAccessToken
	}

	return &service.AccessClaims{
		AccountID: accountID,
		Role:      role,
	}, nil
}

// NewOpaqueToken returns a random URL-safe string. It is a lookup key, not a
// bearer of identity; callers resolve it against the account store.
func (s *tokenService) NewOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *tokenService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *tokenService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// ResetTicketTTL returns the configured password-reset ticket lifetime.
func (s *tokenService) ResetTicketTTL() time.Duration {
	return s.resetTTL
}
