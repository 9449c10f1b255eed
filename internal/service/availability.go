package service

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type availabilityService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	userRepo    repository.UserRepository
}

func NewAvailabilityService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
) AvailabilityService {
	return &availabilityService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
	}
}

// CheckAvailability reports whether carID is free over [pickupAt, returnAt).
// Unauthenticated read; a booking ending exactly at pickupAt does not count
// as a conflict.
func (s *availabilityService) CheckAvailability(ctx context.Context, carID int32, pickupAt, returnAt time.Time) (bool, error) {
	s.sweepOverdue(ctx)

	conflicts, err := s.bookingRepo.CountConflicts(ctx, carID, pickupAt, returnAt, 0)
	if err != nil {
		return false, err
	}
	return conflicts == 0, nil
}

// ListBookedCarIDs returns every car with at least one blocking-status
// booking, restricted to bookings overlapping [from, to) when an interval is
// given. Used to gray out unavailable cars in search results.
func (s *availabilityService) ListBookedCarIDs(ctx context.Context, from, to time.Time) ([]int32, error) {
	s.sweepOverdue(ctx)
	return s.bookingRepo.ListBookedCarIDs(ctx, from, to)
}

// ListAll is the administrative view of all blocking bookings, enriched with
// car and user details.
func (s *availabilityService) ListAll(ctx context.Context, actor domain.Actor, from, to time.Time) ([]domain.BookingWithCar, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}

	s.sweepOverdue(ctx)

	bookings, err := s.bookingRepo.ListBlocking(ctx, from, to)
	if err != nil {
		return nil, err
	}

	enriched := enrichBookings(ctx, s.carRepo, bookings)
	for i := range enriched {
		user, err := s.userRepo.GetByID(ctx, enriched[i].UserID)
		if err != nil {
			continue
		}
		enriched[i].UserName = user.Name
		enriched[i].UserEmail = user.Email
	}
	return enriched, nil
}

func (s *availabilityService) sweepOverdue(ctx context.Context) {
	count, err := s.bookingRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		logger.Warn("overdue booking sweep failed", "error", err)
		return
	}
	if count > 0 {
		logger.Info("expired overdue bookings", "count", count)
	}
}
