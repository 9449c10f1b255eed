package utils

import (
	"time"

	"car-rental-backend/internal/domain"
)

// ParseTimestamp parses an RFC 3339 timestamp from a request. An empty value
// is a missing field, not a format error, so callers can report the two cases
// distinctly.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.ErrMissingField
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return t, nil
}

// ValidateRange checks a proposed rental interval for basic sanity: the
// return must be strictly after the pickup, and the pickup strictly after
// now. No side effects.
func ValidateRange(pickupAt, returnAt, now time.Time) error {
	if !returnAt.After(pickupAt) {
		return domain.ErrInvalidRange
	}
	if !pickupAt.After(now) {
		return domain.ErrPickupInPast
	}
	return nil
}
