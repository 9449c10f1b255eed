package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/security"
)

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	tokens := security.NewTokenManager("test-secret-key-that-is-long-enough!", 1)
	middleware := NewAuthMiddleware(tokens)

	var gotActor domain.Actor
	var called bool
	protected := middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		gotActor, _ = ActorFromContext(r.Context())
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid token injects actor", func(t *testing.T) {
		called = false
		token, err := tokens.GenerateAccessToken(42, "alice@example.com", true)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, int32(42), gotActor.ID)
		assert.True(t, gotActor.IsAdmin)
	})

	t.Run("Missing header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("Malformed header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("Token signed with another key", func(t *testing.T) {
		called = false
		other := security.NewTokenManager("another-secret-key-also-long-enough!", 1)
		token, err := other.GenerateAccessToken(42, "alice@example.com", false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})
}
