// Package user implements the User repository using PostgreSQL.
// Identity itself lives in the campus SSO; this table mirrors the
// profile fields the backend needs for authorization and scoring.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/unihub/campus-events-backend/internal/adapter/postgres"
	"github.com/unihub/campus-events-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT id, display_name, role, owned_society, created_at
FROM users
WHERE id = $1`

const createSQL = `
INSERT INTO users (id, display_name, role, owned_society, created_at)
VALUES ($1, $2, $3, $4, $5)`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var (
		u       domain.User
		role    string
		society *string
	)
	err := r.db.QueryRow(ctx, getByIDSQL, userID).
		Scan(&u.ID, &u.DisplayName, &role, &society, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapError(err, "user", userID)
	}

	u.Role = domain.Role(role)
	if society != nil {
		s := domain.Society(*society)
		u.OwnedSociety = &s
	}

	return u, nil
}

// Create inserts a user row.
func (r *Repo) Create(ctx context.Context, u domain.User) error {
	var society *string
	if u.OwnedSociety != nil {
		s := string(*u.OwnedSociety)
		society = &s
	}

	_, err := r.db.Exec(ctx, createSQL, u.ID, u.DisplayName, string(u.Role), society, u.CreatedAt)
	if err != nil {
		return mapError(err, "user", u.ID)
	}

	return nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
