package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleDriver.IsValid())
	assert.True(t, RolePassenger.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleDriver, RoleFromString("driver"))
	assert.Equal(t, Role(""), RoleFromString("Driver"))
	assert.Equal(t, Role(""), RoleFromString("root"))
}

func TestAccount_HasActiveRefreshToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Second)

	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{
			name:    "live token",
			account: Account{RefreshTokenHash: "abc", RefreshTokenExpiresAt: &future},
			want:    true,
		},
		{
			name:    "no token stored",
			account: Account{},
			want:    false,
		},
		{
			name:    "expired token",
			account: Account{RefreshTokenHash: "abc", RefreshTokenExpiresAt: &past},
			want:    false,
		},
		{
			name:    "expiry exactly now",
			account: Account{RefreshTokenHash: "abc", RefreshTokenExpiresAt: &now},
			want:    false,
		},
		{
			name:    "hash without expiry",
			account: Account{RefreshTokenHash: "abc"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.HasActiveRefreshToken(now))
		})
	}
}

func TestPasswordResetTicket_Usable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	consumed := now.Add(-time.Minute)

	fresh := PasswordResetTicket{ExpiresAt: now.Add(15 * time.Minute)}
	assert.True(t, fresh.Usable(now))

	spent := PasswordResetTicket{ExpiresAt: now.Add(15 * time.Minute), ConsumedAt: &consumed}
	assert.False(t, spent.Usable(now))

	expired := PasswordResetTicket{ExpiresAt: now.Add(-time.Minute)}
	assert.False(t, expired.Usable(now))
}
