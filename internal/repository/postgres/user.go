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

const pqUniqueViolation = "23505"

const userColumns = `id, username, name, user_last_name, email, password, admin, user_created_at, user_updated_at, user_deleted_at`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, name, user_last_name, email, password, admin, user_created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, now())
	          RETURNING id, user_created_at`
	err := r.db.QueryRowContext(ctx, query, u.Username, u.Name, u.LastName, u.Email, u.PasswordHash, u.IsAdmin).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND user_deleted_at IS NULL`
	return r.getOne(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND user_deleted_at IS NULL`
	return r.getOne(ctx, query, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Name, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users
	          SET username = $2, name = $3, user_last_name = $4, email = $5, user_updated_at = now()
	          WHERE id = $1 AND user_deleted_at IS NULL
	          RETURNING user_updated_at`
	err := r.db.QueryRowContext(ctx, query, u.ID, u.Username, u.Name, u.LastName, u.Email).Scan(&u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %d: %w", u.ID, domain.ErrNotFound)
	}
	return err
}

func (r *userRepository) TouchUpdatedAt(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET user_updated_at = now() WHERE id = $1`, id)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) SoftDelete(ctx context.Context, id int32) error {
	query := `UPDATE users SET user_deleted_at = now() WHERE id = $1 AND user_deleted_at IS NULL RETURNING id`
	var deleted int32
	err := r.db.QueryRowContext(ctx, query, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return err
}
