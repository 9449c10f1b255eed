package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"

	"github.com/lib/pq"
)

const carColumns = `id, make, model, year, class, fuel_type, drive, transmission, cylinders, displacement, city_mpg, highway_mpg, combination_mpg, img_path, car_location`

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Make, &c.Model, &c.Year, &c.Class, &c.FuelType, &c.Drive, &c.Transmission,
		&c.Cylinders, &c.Displacement, &c.CityMPG, &c.HighwayMPG, &c.CombinationMPG, &c.ImgPath, &c.CarLocation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("car %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetByIDs(ctx context.Context, ids []int32) ([]domain.Car, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = ANY($1) ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCars(rows)
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	return r.listWhere(ctx, "", nil)
}

func (r *carRepository) ListByMake(ctx context.Context, make string) ([]domain.Car, error) {
	return r.listWhere(ctx, `LOWER(make) = LOWER($1)`, []interface{}{make})
}

func (r *carRepository) ListByYear(ctx context.Context, year int32) ([]domain.Car, error) {
	return r.listWhere(ctx, `year = $1`, []interface{}{year})
}

// ListByClass matches case-insensitively with whitespace stripped on both
// sides, so "SUV", "suv" and "sport utility vehicle" style slugs all resolve.
func (r *carRepository) ListByClass(ctx context.Context, class string) ([]domain.Car, error) {
	return r.listWhere(ctx, `LOWER(REPLACE(class, ' ', '')) = LOWER(REPLACE($1, ' ', ''))`, []interface{}{class})
}

func (r *carRepository) ListByFuelType(ctx context.Context, fuelType string) ([]domain.Car, error) {
	return r.listWhere(ctx, `LOWER(fuel_type) = LOWER($1)`, []interface{}{fuelType})
}

func (r *carRepository) ListByDrive(ctx context.Context, drive string) ([]domain.Car, error) {
	return r.listWhere(ctx, `LOWER(drive) = LOWER($1)`, []interface{}{drive})
}

func (r *carRepository) listWhere(ctx context.Context, predicate string, args []interface{}) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars`
	if predicate != "" {
		query += ` WHERE ` + predicate
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCars(rows)
}

func (r *carRepository) SetImagePath(ctx context.Context, id int32, imgPath string) error {
	query := `UPDATE cars SET img_path = $2 WHERE id = $1 RETURNING id`
	var updated int32
	err := r.db.QueryRowContext(ctx, query, id, imgPath).Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("car %d: %w", id, domain.ErrNotFound)
	}
	return err
}

func scanCars(rows *sql.Rows) ([]domain.Car, error) {
	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Class, &c.FuelType, &c.Drive, &c.Transmission,
			&c.Cylinders, &c.Displacement, &c.CityMPG, &c.HighwayMPG, &c.CombinationMPG, &c.ImgPath, &c.CarLocation); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
