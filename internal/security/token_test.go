package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rental-backend/internal/security"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 1)

	t.Run("Regular user", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(42, "alice@example.com", false)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("Admin flag survives the round trip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(1, "admin@example.com", true)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})
}

func TestTokenManager_ValidateToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, 1)

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := manager.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Wrong signing key", func(t *testing.T) {
		other := security.NewTokenManager("another-secret-key-also-long-enough!", 1)
		token, err := other.GenerateAccessToken(42, "alice@example.com", false)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := security.NewTokenManager(testSecret, -1)
		token, err := expired.GenerateAccessToken(42, "alice@example.com", false)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.ErrorIs(t, err, security.ErrExpiredToken)
		assert.Nil(t, claims)
	})
}
