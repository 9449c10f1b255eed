package service

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	dailyRate   int32
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	dailyRate int32,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		dailyRate:   dailyRate,
	}
}

// Create validates the requested interval, checks for conflicting bookings
// and inserts a confirmed booking priced at the daily rate in effect now.
// The pre-check gives a fast, friendly conflict error; the database
// range-exclusion constraint remains the authoritative guard, and its
// violation surfaces as the same ErrCarUnavailable.
func (s *bookingService) Create(ctx context.Context, actor domain.Actor, carID int32, pickupAt, returnAt time.Time) (*domain.Booking, error) {
	if err := utils.ValidateRange(pickupAt, returnAt, time.Now()); err != nil {
		return nil, err
	}

	conflicts, err := s.bookingRepo.CountConflicts(ctx, carID, pickupAt, returnAt, 0)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, domain.ErrCarUnavailable
	}

	booking := &domain.Booking{
		CarID:      carID,
		UserID:     actor.ID,
		PickupAt:   pickupAt,
		ReturnAt:   returnAt,
		Status:     domain.BookingStatusConfirmed,
		PriceTotal: utils.ComputePrice(pickupAt, returnAt, s.dailyRate),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		"booking_id", booking.ID,
		"car_id", booking.CarID,
		"user_id", booking.UserID,
		"price_total", booking.PriceTotal)
	return booking, nil
}

// Cancel sets the booking to canceled. Only the owning user or an admin may
// cancel, and a booking already in a terminal state stays untouched.
func (s *bookingService) Cancel(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(booking.UserID) {
		return nil, domain.ErrForbidden
	}
	if booking.Status.IsTerminal() {
		return nil, domain.ErrAlreadyTerminal
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCanceled)
	if err != nil {
		return nil, err
	}
	logger.Info("booking canceled", "booking_id", bookingID, "actor_id", actor.ID)
	return updated, nil
}

// UpdateStatus overwrites the booking status. Admin-only; the overwrite is
// deliberately unconditional so an operator can correct any booking, unlike
// the user-facing Cancel path which refuses terminal states.
func (s *bookingService) UpdateStatus(ctx context.Context, actor domain.Actor, bookingID int32, status domain.BookingStatus) (*domain.Booking, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	logger.Info("booking status updated", "booking_id", bookingID, "status", status, "admin_id", actor.ID)
	return updated, nil
}

func (s *bookingService) GetByID(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.BookingWithCar, error) {
	s.sweepOverdue(ctx)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(booking.UserID) {
		return nil, domain.ErrForbidden
	}

	enriched := enrichBookings(ctx, s.carRepo, []domain.Booking{*booking})
	return &enriched[0], nil
}

func (s *bookingService) ListForUser(ctx context.Context, actor domain.Actor, userID int32) ([]domain.BookingWithCar, error) {
	if !actor.CanActFor(userID) {
		return nil, domain.ErrForbidden
	}

	s.sweepOverdue(ctx)

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return enrichBookings(ctx, s.carRepo, bookings), nil
}

// sweepOverdue expires overdue bookings before a read so clients never see
// stale blocking statuses. Failures are logged and swallowed; the sweep must
// never block the read it supports.
func (s *bookingService) sweepOverdue(ctx context.Context) {
	count, err := s.bookingRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		logger.Warn("overdue booking sweep failed", "error", err)
		return
	}
	if count > 0 {
		logger.Info("expired overdue bookings", "count", count)
	}
}

// enrichBookings joins catalog snapshot fields onto bookings. Enrichment is
// best effort: a catalog failure leaves the bare bookings intact rather than
// failing the read.
func enrichBookings(ctx context.Context, carRepo repository.CarRepository, bookings []domain.Booking) []domain.BookingWithCar {
	result := make([]domain.BookingWithCar, len(bookings))
	for i, b := range bookings {
		result[i] = domain.BookingWithCar{Booking: b}
	}
	if len(bookings) == 0 {
		return result
	}

	seen := make(map[int32]bool)
	var carIDs []int32
	for _, b := range bookings {
		if !seen[b.CarID] {
			seen[b.CarID] = true
			carIDs = append(carIDs, b.CarID)
		}
	}

	cars, err := carRepo.GetByIDs(ctx, carIDs)
	if err != nil {
		logger.Warn("failed to load car details for bookings", "error", err)
		return result
	}
	carsByID := make(map[int32]domain.Car, len(cars))
	for _, c := range cars {
		carsByID[c.ID] = c
	}

	for i := range result {
		car, ok := carsByID[result[i].CarID]
		if !ok {
			continue
		}
		result[i].Make = car.Make
		result[i].Model = car.Model
		result[i].Year = car.Year
		result[i].Class = car.Class
		result[i].FuelType = car.FuelType
		result[i].ImgPath = car.ImgPath
		result[i].CarLocation = car.CarLocation
	}
	return result
}
