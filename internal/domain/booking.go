package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusReturned   BookingStatus = "returned"
	BookingStatusCanceled   BookingStatus = "canceled"
	BookingStatusExpired    BookingStatus = "expired"
)

// BlockingStatuses are the statuses that occupy a car for the booking's
// interval and must be considered during conflict detection.
var BlockingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
}

// IsValid reports whether s is one of the six enumerated statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusReturned, BookingStatusCanceled, BookingStatusExpired:
		return true
	}
	return false
}

// IsBlocking reports whether a booking in status s occupies its car.
func (s BookingStatus) IsBlocking() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress:
		return true
	}
	return false
}

// IsTerminal reports whether s permits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusReturned, BookingStatusCanceled, BookingStatusExpired:
		return true
	}
	return false
}

// Booking is a time-ranged reservation of a single car. The rental interval
// is half-open: [PickupAt, ReturnAt). PriceTotal is computed once at creation
// and never recomputed on status changes.
type Booking struct {
	ID         int32         `json:"id"`
	CarID      int32         `json:"car_id"`
	UserID     int32         `json:"user_id"`
	PickupAt   time.Time     `json:"pickup_at"`
	ReturnAt   time.Time     `json:"return_at"`
	Status     BookingStatus `json:"status"`
	PriceTotal int32         `json:"price_total"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingWithCar is a booking enriched with a snapshot of catalog fields,
// joined in at read time for client display.
type BookingWithCar struct {
	Booking
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Year        int32  `json:"year,omitempty"`
	Class       string `json:"class,omitempty"`
	FuelType    string `json:"fuel_type,omitempty"`
	ImgPath     string `json:"img_path,omitempty"`
	CarLocation string `json:"car_location,omitempty"`

	// Populated only on the administrative listing.
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
