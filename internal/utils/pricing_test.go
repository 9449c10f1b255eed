package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		want     int32
	}{
		{"exactly one day", 24 * time.Hour, 1},
		{"25 hours rounds up to two days", 25 * time.Hour, 2},
		{"one minute rounds up to one day", time.Minute, 1},
		{"exactly two days", 48 * time.Hour, 2},
		{"just under two days", 48*time.Hour - time.Second, 2},
		{"zero duration", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(pickup, pickup.Add(tt.duration)))
		})
	}
}

func TestComputePrice(t *testing.T) {
	pickup := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	const rate = int32(399)

	t.Run("25 hours costs two days", func(t *testing.T) {
		assert.Equal(t, int32(798), ComputePrice(pickup, pickup.Add(25*time.Hour), rate))
	})

	t.Run("24 hours costs one day", func(t *testing.T) {
		assert.Equal(t, int32(399), ComputePrice(pickup, pickup.Add(24*time.Hour), rate))
	})

	t.Run("one minute costs one day", func(t *testing.T) {
		assert.Equal(t, int32(399), ComputePrice(pickup, pickup.Add(time.Minute), rate))
	})

	t.Run("amount is an exact multiple of the rate", func(t *testing.T) {
		price := ComputePrice(pickup, pickup.Add(90*time.Hour), rate)
		assert.Zero(t, price%rate)
	})
}
