package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config", "testdata")
	require.NoError(t, err)

	assert.Equal(t, "ridehail", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "ridehail", cfg.Auth.Issuer)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	t.Setenv("AUTH_SECRET", "override-secret")
	t.Setenv("AUTH_ACCESSTOKENTTL", "5m")

	cfg, err := LoadWithEnv[Config]("config", "testdata")
	require.NoError(t, err)

	assert.Equal(t, "override-secret", cfg.Auth.Secret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("nonexistent", "testdata")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"accessTokenTtl": "15m",
			"secret":         "s",
		},
		"http": map[string]any{
			"port": 8080,
		},
	}

	tests := []struct {
		raw  string
		want string
	}{
		{"AUTH_ACCESSTOKENTTL", "auth.accessTokenTtl"},
		{"AUTH_SECRET", "auth.secret"},
		{"HTTP_PORT", "http.port"},
		{"AUTH_UNKNOWNKEY", "auth.unknownkey"},
		{"BRAND_NEW", "brand.new"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.raw, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, defaultResetTicketTTL, cfg.Auth.ResetTicketTTL)
}
