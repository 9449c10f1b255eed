package service

import (
	"context"
	"io"
	"time"

	"car-rental-backend/internal/domain"
)

type BookingService interface {
	Create(ctx context.Context, actor domain.Actor, carID int32, pickupAt, returnAt time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, bookingID int32, status domain.BookingStatus) (*domain.Booking, error)
	GetByID(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.BookingWithCar, error)
	ListForUser(ctx context.Context, actor domain.Actor, userID int32) ([]domain.BookingWithCar, error)
}

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, carID int32, pickupAt, returnAt time.Time) (bool, error)
	ListBookedCarIDs(ctx context.Context, from, to time.Time) ([]int32, error)
	ListAll(ctx context.Context, actor domain.Actor, from, to time.Time) ([]domain.BookingWithCar, error)
}

type CarService interface {
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListCarsByMake(ctx context.Context, make string) ([]domain.Car, error)
	ListCarsByYear(ctx context.Context, year int32) ([]domain.Car, error)
	ListCarsByClass(ctx context.Context, class string) ([]domain.Car, error)
	ListCarsByFuelType(ctx context.Context, fuelType string) ([]domain.Car, error)
	ListCarsByDrive(ctx context.Context, drive string) ([]domain.Car, error)
	UploadImage(ctx context.Context, actor domain.Actor, carID int32, contentType string, body io.Reader) (*domain.Car, error)
	OpenImage(ctx context.Context, carID int32) (io.ReadCloser, string, error)
}

type AuthService interface {
	Signup(ctx context.Context, username, name, lastName, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, actor domain.Actor, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, userID int32, username, name, lastName, email string) (*domain.User, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	SoftDeleteUser(ctx context.Context, actor domain.Actor, userID int32) error
}
