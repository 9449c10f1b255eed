package repository

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	TouchUpdatedAt(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.User, error)
	SoftDelete(ctx context.Context, id int32) error
}

type CarRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	GetByIDs(ctx context.Context, ids []int32) ([]domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	ListByMake(ctx context.Context, make string) ([]domain.Car, error)
	ListByYear(ctx context.Context, year int32) ([]domain.Car, error)
	ListByClass(ctx context.Context, class string) ([]domain.Car, error)
	ListByFuelType(ctx context.Context, fuelType string) ([]domain.Car, error)
	ListByDrive(ctx context.Context, drive string) ([]domain.Car, error)
	SetImagePath(ctx context.Context, id int32, imgPath string) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error)

	// CountConflicts reports how many blocking-status bookings for carID
	// intersect [pickupAt, returnAt) under half-open semantics. excludeID,
	// when non-zero, removes one booking from consideration so the check can
	// be reused for updates.
	CountConflicts(ctx context.Context, carID int32, pickupAt, returnAt time.Time, excludeID int32) (int32, error)

	// ListBlocking returns every blocking-status booking; when from/to are
	// non-zero the result is restricted to bookings overlapping [from, to).
	ListBlocking(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	ListBookedCarIDs(ctx context.Context, from, to time.Time) ([]int32, error)

	// ExpireOverdue transitions every blocking-status booking whose return
	// time has passed into expired, returning the number of rows updated.
	// Idempotent; concurrent sweeps are safe.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}
