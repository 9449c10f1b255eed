package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

const testDailyRate = int32(399)

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: 1}
	carID := int32(5)
	pickup := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	ret := pickup.Add(48 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		bookingRepo.On("CountConflicts", ctx, carID, pickup, ret, int32(0)).Return(int32(0), nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 42
		}).Return(nil)

		booking, err := svc.Create(ctx, actor, carID, pickup, ret)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), booking.ID)
		assert.Equal(t, carID, booking.CarID)
		assert.Equal(t, actor.ID, booking.UserID)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, 2*testDailyRate, booking.PriceTotal)
	})

	t.Run("Conflict from pre-check", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		bookingRepo.On("CountConflicts", ctx, carID, pickup, ret, int32(0)).Return(int32(1), nil)

		booking, err := svc.Create(ctx, actor, carID, pickup, ret)
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
		assert.Nil(t, booking)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Conflict from exclusion constraint", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		// The pre-check passed but a concurrent insert won the race.
		bookingRepo.On("CountConflicts", ctx, carID, pickup, ret, int32(0)).Return(int32(0), nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(domain.ErrCarUnavailable)

		booking, err := svc.Create(ctx, actor, carID, pickup, ret)
		assert.ErrorIs(t, err, domain.ErrCarUnavailable)
		assert.Nil(t, booking)
	})

	t.Run("Return before pickup", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		booking, err := svc.Create(ctx, actor, carID, pickup, pickup.Add(-time.Hour))
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
		assert.Nil(t, booking)
		bookingRepo.AssertNotCalled(t, "CountConflicts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Pickup in the past", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		past := time.Now().Add(-24 * time.Hour)
		booking, err := svc.Create(ctx, actor, carID, past, past.Add(48*time.Hour))
		assert.ErrorIs(t, err, domain.ErrPickupInPast)
		assert.Nil(t, booking)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()
	bookingID := int32(42)

	confirmed := func() *domain.Booking {
		return &domain.Booking{ID: bookingID, CarID: 5, UserID: 1, Status: domain.BookingStatusConfirmed}
	}

	t.Run("Owner cancels", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		canceled := confirmed()
		canceled.Status = domain.BookingStatusCanceled
		bookingRepo.On("GetByID", ctx, bookingID).Return(confirmed(), nil)
		bookingRepo.On("UpdateStatus", ctx, bookingID, domain.BookingStatusCanceled).Return(canceled, nil)

		res, err := svc.Cancel(ctx, domain.Actor{ID: 1}, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCanceled, res.Status)
	})

	t.Run("Admin cancels another user's booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		canceled := confirmed()
		canceled.Status = domain.BookingStatusCanceled
		bookingRepo.On("GetByID", ctx, bookingID).Return(confirmed(), nil)
		bookingRepo.On("UpdateStatus", ctx, bookingID, domain.BookingStatusCanceled).Return(canceled, nil)

		_, err := svc.Cancel(ctx, domain.Actor{ID: 99, IsAdmin: true}, bookingID)
		assert.NoError(t, err)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		bookingRepo.On("GetByID", ctx, bookingID).Return(confirmed(), nil)

		res, err := svc.Cancel(ctx, domain.Actor{ID: 2}, bookingID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, res)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already terminal", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		terminal := confirmed()
		terminal.Status = domain.BookingStatusCanceled
		bookingRepo.On("GetByID", ctx, bookingID).Return(terminal, nil)

		res, err := svc.Cancel(ctx, domain.Actor{ID: 1}, bookingID)
		assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
		assert.Nil(t, res)
	})

	t.Run("Not found", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		bookingRepo.On("GetByID", ctx, bookingID).Return(nil, domain.ErrNotFound)

		_, err := svc.Cancel(ctx, domain.Actor{ID: 1}, bookingID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	bookingID := int32(42)

	t.Run("Non-admin is forbidden", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		_, err := svc.UpdateStatus(ctx, domain.Actor{ID: 1}, bookingID, domain.BookingStatusReturned)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid status", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		_, err := svc.UpdateStatus(ctx, domain.Actor{ID: 9, IsAdmin: true}, bookingID, "finished")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("Admin may overwrite any status including terminal", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		updated := &domain.Booking{ID: bookingID, Status: domain.BookingStatusPending}
		bookingRepo.On("UpdateStatus", ctx, bookingID, domain.BookingStatusPending).Return(updated, nil)

		res, err := svc.UpdateStatus(ctx, domain.Actor{ID: 9, IsAdmin: true}, bookingID, domain.BookingStatusPending)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
	})

	t.Run("Expired is accepted", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		updated := &domain.Booking{ID: bookingID, Status: domain.BookingStatusExpired}
		bookingRepo.On("UpdateStatus", ctx, bookingID, domain.BookingStatusExpired).Return(updated, nil)

		_, err := svc.UpdateStatus(ctx, domain.Actor{ID: 9, IsAdmin: true}, bookingID, domain.BookingStatusExpired)
		assert.NoError(t, err)
	})
}

func TestBookingService_GetByID(t *testing.T) {
	ctx := context.Background()
	bookingID := int32(42)
	booking := &domain.Booking{ID: bookingID, CarID: 5, UserID: 1, Status: domain.BookingStatusConfirmed}

	t.Run("Owner gets booking enriched with car snapshot", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		bookingRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil)
		bookingRepo.On("GetByID", ctx, bookingID).Return(booking, nil)
		carRepo.On("GetByIDs", ctx, []int32{5}).Return([]domain.Car{{
			ID: 5, Make: "Toyota", Model: "Corolla", Year: 2022, Class: "compact", FuelType: "gas",
		}}, nil)

		res, err := svc.GetByID(ctx, domain.Actor{ID: 1}, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, "Toyota", res.Make)
		assert.Equal(t, "Corolla", res.Model)
		assert.Equal(t, int32(2022), res.Year)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		bookingRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil)
		bookingRepo.On("GetByID", ctx, bookingID).Return(booking, nil)

		res, err := svc.GetByID(ctx, domain.Actor{ID: 2}, bookingID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, res)
	})

	t.Run("Read succeeds even when the sweep fails", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		bookingRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), assert.AnError)
		bookingRepo.On("GetByID", ctx, bookingID).Return(booking, nil)
		carRepo.On("GetByIDs", ctx, []int32{5}).Return([]domain.Car{{ID: 5, Make: "Toyota"}}, nil)

		res, err := svc.GetByID(ctx, domain.Actor{ID: 1}, bookingID)
		assert.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestBookingService_ListForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Self lists own bookings", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		carRepo := new(MockCarRepo)
		svc := service.NewBookingService(bookingRepo, carRepo, testDailyRate)

		bookingRepo.On("ExpireOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil)
		bookingRepo.On("ListByUser", ctx, int32(1)).Return([]domain.Booking{
			{ID: 1, CarID: 5, UserID: 1},
			{ID: 2, CarID: 6, UserID: 1},
		}, nil)
		carRepo.On("GetByIDs", ctx, []int32{5, 6}).Return([]domain.Car{
			{ID: 5, Make: "Toyota"},
			{ID: 6, Make: "Volvo"},
		}, nil)

		res, err := svc.ListForUser(ctx, domain.Actor{ID: 1}, 1)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "Toyota", res[0].Make)
		assert.Equal(t, "Volvo", res[1].Make)
	})

	t.Run("Stranger is forbidden before any store access", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockCarRepo), testDailyRate)

		res, err := svc.ListForUser(ctx, domain.Actor{ID: 2}, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, res)
		bookingRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
		bookingRepo.AssertNotCalled(t, "ExpireOverdue", mock.Anything, mock.Anything)
	})
}
