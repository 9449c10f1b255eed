package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"

	"github.com/lib/pq"
)

// Postgres error codes the booking table can surface during inserts.
const (
	pqExclusionViolation  = "23P01"
	pqForeignKeyViolation = "23503"
)

const bookingColumns = `id, car_id, user_id, pickup_at, return_at, status, price_total, created_at, updated_at`

// Overlap predicate shared by the conflict check and the interval-filtered
// listings. Half-open ranges so a booking ending exactly when another begins
// does not conflict.
const overlapPredicate = `tstzrange(pickup_at, return_at, '[)') && tstzrange($%d::timestamptz, $%d::timestamptz, '[)')`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking and translates constraint violations into domain
// errors: the range-exclusion constraint is the last-resort guard against two
// concurrent requests both passing the conflict pre-check, and a foreign-key
// violation means the car does not exist.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (car_id, user_id, pickup_at, return_at, status, price_total, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, b.CarID, b.UserID, b.PickupAt, b.ReturnAt, b.Status, b.PriceTotal).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pqExclusionViolation:
				return domain.ErrCarUnavailable
			case pqForeignKeyViolation:
				return fmt.Errorf("car %d: %w", b.CarID, domain.ErrNotFound)
			}
		}
		return err
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.CarID, &b.UserID, &b.PickupAt, &b.ReturnAt, &b.Status, &b.PriceTotal, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2
	          RETURNING ` + bookingColumns
	err := r.db.QueryRowContext(ctx, query, status, id).
		Scan(&b.ID, &b.CarID, &b.UserID, &b.PickupAt, &b.ReturnAt, &b.Status, &b.PriceTotal, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) CountConflicts(ctx context.Context, carID int32, pickupAt, returnAt time.Time, excludeID int32) (int32, error) {
	query := `SELECT COUNT(*) FROM bookings
	          WHERE car_id = $1
	          AND status IN ('pending', 'confirmed', 'in_progress')
	          AND ` + fmt.Sprintf(overlapPredicate, 2, 3)
	args := []interface{}{carID, pickupAt, returnAt}
	if excludeID != 0 {
		query += ` AND id <> $4`
		args = append(args, excludeID)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) ListBlocking(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status IN ('pending', 'confirmed', 'in_progress')`
	var args []interface{}
	if !from.IsZero() && !to.IsZero() {
		query += ` AND ` + fmt.Sprintf(overlapPredicate, 1, 2)
		args = append(args, from, to)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListBookedCarIDs(ctx context.Context, from, to time.Time) ([]int32, error) {
	query := `SELECT DISTINCT car_id FROM bookings
	          WHERE status IN ('pending', 'confirmed', 'in_progress')`
	var args []interface{}
	if !from.IsZero() && !to.IsZero() {
		query += ` AND ` + fmt.Sprintf(overlapPredicate, 1, 2)
		args = append(args, from, to)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *bookingRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE bookings
	          SET status = 'expired', updated_at = now()
	          WHERE status IN ('pending', 'confirmed', 'in_progress')
	          AND return_at < $1`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.CarID, &b.UserID, &b.PickupAt, &b.ReturnAt, &b.Status, &b.PriceTotal, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
