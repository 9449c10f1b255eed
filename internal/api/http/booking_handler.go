package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
	"car-rental-backend/internal/utils"
)

// BookingHandler exposes the booking lifecycle and availability endpoints.
type BookingHandler struct {
	bookings     service.BookingService
	availability service.AvailabilityService
}

func NewBookingHandler(bookings service.BookingService, availability service.AvailabilityService) *BookingHandler {
	return &BookingHandler{
		bookings:     bookings,
		availability: availability,
	}
}

type createBookingRequest struct {
	CarID    int32  `json:"car_id"`
	PickupAt string `json:"pickup_at"`
	ReturnAt string `json:"return_at"`
}

// CreateBooking handles POST /bookings. The booking user comes from the
// session, never from the body.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.CarID == 0 {
		writeBadRequest(w, "missing required fields: car_id, pickup_at, return_at")
		return
	}

	pickupAt, err := utils.ParseTimestamp(req.PickupAt)
	if err != nil {
		writeError(w, err)
		return
	}
	returnAt, err := utils.ParseTimestamp(req.ReturnAt)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.Create(r.Context(), actor, req.CarID, pickupAt, returnAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// CheckAvailability handles GET /bookings/availability. Unauthenticated.
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	carID, err := parseInt32(q.Get("car_id"))
	if err != nil || carID == 0 {
		writeBadRequest(w, "missing required parameters: car_id, pickup_at, return_at")
		return
	}
	pickupAt, err := utils.ParseTimestamp(q.Get("pickup_at"))
	if err != nil {
		writeError(w, err)
		return
	}
	returnAt, err := utils.ParseTimestamp(q.Get("return_at"))
	if err != nil {
		writeError(w, err)
		return
	}

	available, err := h.availability.CheckAvailability(r.Context(), carID, pickupAt, returnAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": available,
		"car_id":    carID,
		"pickup_at": pickupAt,
		"return_at": returnAt,
	})
}

// ListBookedCarIDs handles GET /bookings/booked-car-ids. Unauthenticated.
// The interval filter is all-or-nothing: either both bounds or neither.
func (h *BookingHandler) ListBookedCarIDs(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseOptionalInterval(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ids, err := h.availability.ListBookedCarIDs(r.Context(), from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []int32{}
	}
	writeJSON(w, http.StatusOK, ids)
}

// ListUserBookings handles GET /bookings/user/{userId}. Self or admin only.
func (h *BookingHandler) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	userID, err := parseInt32(mux.Vars(r)["userId"])
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	bookings, err := h.bookings.ListForUser(r.Context(), actor, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.BookingWithCar{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/{id}. Self or admin only.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookings.GetByID(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// CancelBooking handles PATCH /bookings/{id}/cancel.
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookings.Cancel(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus handles PATCH /bookings/{id}/status. Admin only.
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	id, err := parseInt32(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid booking id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	booking, err := h.bookings.UpdateStatus(r.Context(), actor, id, domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// ListAllBookings handles GET /bookings. Admin only; optional date filters.
func (h *BookingHandler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	from, to, err := parseOptionalInterval(r)
	if err != nil {
		writeError(w, err)
		return
	}

	bookings, err := h.availability.ListAll(r.Context(), actor, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.BookingWithCar{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func parseOptionalInterval(r *http.Request) (time.Time, time.Time, error) {
	q := r.URL.Query()
	pickup, ret := q.Get("pickup_at"), q.Get("return_at")
	if pickup == "" && ret == "" {
		return time.Time{}, time.Time{}, nil
	}
	from, err := utils.ParseTimestamp(pickup)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := utils.ParseTimestamp(ret)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
