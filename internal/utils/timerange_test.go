package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"car-rental-backend/internal/domain"
)

func TestParseTimestamp(t *testing.T) {
	t.Run("valid RFC 3339", func(t *testing.T) {
		ts, err := ParseTimestamp("2025-06-01T10:00:00Z")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), ts.UTC())
	})

	t.Run("empty is a missing field", func(t *testing.T) {
		_, err := ParseTimestamp("")
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})

	t.Run("garbage is a format error", func(t *testing.T) {
		_, err := ParseTimestamp("not-a-date")
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	})

	t.Run("bare date is a format error", func(t *testing.T) {
		_, err := ParseTimestamp("2025-06-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	})
}

func TestValidateRange(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	pickup := now.Add(24 * time.Hour)

	t.Run("valid range", func(t *testing.T) {
		assert.NoError(t, ValidateRange(pickup, pickup.Add(48*time.Hour), now))
	})

	t.Run("return equal to pickup", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRange(pickup, pickup, now), domain.ErrInvalidRange)
	})

	t.Run("return before pickup", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRange(pickup, pickup.Add(-time.Hour), now), domain.ErrInvalidRange)
	})

	t.Run("pickup in the past", func(t *testing.T) {
		err := ValidateRange(now.Add(-time.Hour), now.Add(24*time.Hour), now)
		assert.ErrorIs(t, err, domain.ErrPickupInPast)
	})

	t.Run("pickup exactly now is rejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRange(now, now.Add(24*time.Hour), now), domain.ErrPickupInPast)
	})
}
