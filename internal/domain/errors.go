package domain

import "errors"

// Error taxonomy for the booking core. Services return these (possibly
// wrapped); the HTTP layer maps each to a status code in one place.
var (
	// Validation errors (HTTP 400).
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidRange      = errors.New("return date must be after pickup date")
	ErrPickupInPast      = errors.New("pickup date must be in the future")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrUnsupportedImage  = errors.New("unsupported image type")

	// Conflict (HTTP 409). Produced by the overlap pre-check and also by the
	// database exclusion constraint, so the client sees one uniform contract.
	ErrCarUnavailable = errors.New("car is not available for the selected dates")

	// Lifecycle (HTTP 400).
	ErrAlreadyTerminal = errors.New("booking is already in a terminal state")

	// Authorization (HTTP 401/403).
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden")

	// Not found (HTTP 404).
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail = errors.New("user already exists with this email")
)
