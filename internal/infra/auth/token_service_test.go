package auth

import (
	"testing"
	"time"

	"ridehail/config"
	"ridehail/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test_signing_secret_key_very_long_for_testing"
	cfg.Auth.Issuer = "ridehail-test"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	cfg.Auth.ResetTicketTTL = 15 * time.Minute

	return cfg
}

func TestTokenService_IssueAndValidateAccessToken(t *testing.T) {
	svc, err := NewTokenService(newTestTokenConfig())
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := svc.IssueAccessToken(accountID, entity.RoleDriver)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.RoleDriver, claims.Role)
}

func TestTokenService_ValidateAccessToken_Malformed(t *testing.T) {
	svc, err := NewTokenService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenService_ValidateAccessToken_WrongKey(t *testing.T) {
	svc, err := NewTokenService(newTestTokenConfig())
	require.NoError(t, err)

	otherCfg := newTestTokenConfig()
	otherCfg.Auth.Secret = "a_completely_different_signing_secret"
	other, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	token, err := other.IssueAccessToken(uuid.New(), entity.RolePassenger)
	require.NoError(t, err)

	// Signature mismatch reports the same error as expiry or malformed input.
	claims, err := svc.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenService_AccessTokenExpiryBoundary(t *testing.T) {
	cfg := newTestTokenConfig()
	ttl := time.Minute
	cfg.Auth.AccessTokenTTL = ttl

	raw, err := NewTokenService(cfg)
	require.NoError(t, err)
	svc := raw.(*tokenService)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueAccessToken(uuid.New(), entity.RoleDriver)
	require.NoError(t, err)

	// Just before expiry the token still validates.
	svc.now = func() time.Time { return issuedAt.Add(ttl - time.Second) }
	_, err = svc.ValidateAccessToken(token)
	assert.NoError(t, err)

	// At and past expiry it does not.
	svc.now = func() time.Time { return issuedAt.Add(ttl + time.Second) }
	claims, err := svc.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenService_NewOpaqueToken(t *testing.T) {
	svc, err := NewTokenService(newTestTokenConfig())
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 100 {
		token, err := svc.NewOpaqueToken()
		require.NoError(t, err)
		// 32 random bytes base64url-encoded without padding.
		assert.Len(t, token, 43)

		_, dup := seen[token]
		assert.False(t, dup, "opaque tokens must not collide")
		seen[token] = struct{}{}
	}
}

func TestTokenService_MissingSecret(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Auth.Secret = ""

	svc, err := NewTokenService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestTokenService_TTLAccessors(t *testing.T) {
	cfg := newTestTokenConfig()
	svc, err := NewTokenService(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.Auth.AccessTokenTTL, svc.AccessTokenTTL())
	assert.Equal(t, cfg.Auth.RefreshTokenTTL, svc.RefreshTokenTTL())
	assert.Equal(t, cfg.Auth.ResetTicketTTL, svc.ResetTicketTTL())
}
