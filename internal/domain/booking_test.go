package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	valid := []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusReturned, BookingStatusCanceled, BookingStatusExpired,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("CONFIRMED").IsValid())
	assert.False(t, BookingStatus("done").IsValid())
}

func TestBookingStatusClassification(t *testing.T) {
	for _, s := range BlockingStatuses {
		assert.True(t, s.IsBlocking(), string(s))
		assert.False(t, s.IsTerminal(), string(s))
	}

	terminal := []BookingStatus{BookingStatusReturned, BookingStatusCanceled, BookingStatusExpired}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), string(s))
		assert.False(t, s.IsBlocking(), string(s))
	}
}

func TestActorCanActFor(t *testing.T) {
	owner := Actor{ID: 7}
	admin := Actor{ID: 99, IsAdmin: true}
	stranger := Actor{ID: 8}

	assert.True(t, owner.CanActFor(7))
	assert.True(t, admin.CanActFor(7))
	assert.False(t, stranger.CanActFor(7))
}
