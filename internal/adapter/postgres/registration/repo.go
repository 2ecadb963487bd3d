// Package registration implements the Registration repository using
// PostgreSQL. Registrations are the source of truth for who attends an
// event; the event roster is a denormalized copy.
package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/unihub/campus-events-backend/internal/adapter/postgres"
	"github.com/unihub/campus-events-backend/internal/domain"
)

// Repo provides registration persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new registration repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const registrationColumns = `id, user_id, event_id, registered_at, attended, rating, feedback, feedback_at`

const createSQL = `
INSERT INTO registrations (id, user_id, event_id, registered_at, attended)
VALUES ($1, $2, $3, $4, $5)`

const deleteSQL = `
DELETE FROM registrations WHERE user_id = $1 AND event_id = $2`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM registrations WHERE user_id = $1 AND event_id = $2)`

const getByUserAndEventSQL = `
SELECT ` + registrationColumns + `
FROM registrations
WHERE user_id = $1 AND event_id = $2`

const listByEventSQL = `
SELECT ` + registrationColumns + `
FROM registrations
WHERE event_id = $1
ORDER BY registered_at`

const listSlotsByUserSQL = `
SELECT e.id, e.date, e.start_time
FROM registrations r
JOIN events e ON r.event_id = e.id
WHERE r.user_id = $1
ORDER BY e.date, e.start_time`

const eventsByUserSQL = `
SELECT e.id, e.title, e.description, e.date, e.start_time, e.venue, e.society,
       e.category, e.capacity, e.roster, e.owner_id, e.created_at, e.updated_at
FROM registrations r
JOIN events e ON r.event_id = e.id
WHERE r.user_id = $1
ORDER BY e.date, e.start_time`

const dailyCountsSQL = `
SELECT date_trunc('day', registered_at) AS day, count(*)
FROM registrations
WHERE event_id = $1 AND registered_at >= $2
GROUP BY day
ORDER BY day`

const setFeedbackSQL = `
UPDATE registrations
SET rating = $3, feedback = $4, feedback_at = $5
WHERE user_id = $1 AND event_id = $2`

const setAttendedSQL = `
UPDATE registrations
SET attended = $3
WHERE user_id = $1 AND event_id = $2`

// Create inserts a registration row.
// A duplicate (user, event) pair maps to domain.ErrAlreadyRegistered.
func (r *Repo) Create(ctx context.Context, reg domain.Registration) error {
	_, err := r.db.Exec(ctx, createSQL,
		reg.ID, reg.UserID, reg.EventID, reg.RegisteredAt, reg.Attended)
	if err != nil {
		return mapError(err, "registration", reg.ID)
	}

	return nil
}

// Delete removes the registration for (user, event). Returns true if a
// row was deleted; deleting a missing registration is not an error.
func (r *Repo) Delete(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteSQL, userID, eventID)
	if err != nil {
		return false, mapError(err, "registration", eventID)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether the user holds a registration for the event.
func (r *Repo) Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsSQL, userID, eventID).Scan(&exists); err != nil {
		return false, mapError(err, "registration", eventID)
	}

	return exists, nil
}

// GetByUserAndEvent returns the user's registration for an event.
func (r *Repo) GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (domain.Registration, error) {
	row := r.db.QueryRow(ctx, getByUserAndEventSQL, userID, eventID)
	reg, err := scanRegistrationFromRow(row)
	if err != nil {
		return domain.Registration{}, mapError(err, "registration", eventID)
	}

	return reg, nil
}

// ListByEvent returns all registrations for an event ordered by
// registration time.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	rows, err := r.db.Query(ctx, listByEventSQL, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	regs, err := scanRegistrations(rows)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	return regs, nil
}

// ListSlotsByUser returns the (date, start time) slots occupied by the
// user's registrations.
func (r *Repo) ListSlotsByUser(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleSlot, error) {
	rows, err := r.db.Query(ctx, listSlotsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedule slots: %w", err)
	}
	defer rows.Close()

	slots := []domain.ScheduleSlot{}
	for rows.Next() {
		var s domain.ScheduleSlot
		if err := rows.Scan(&s.EventID, &s.Date, &s.StartTime); err != nil {
			return nil, fmt.Errorf("scan schedule slot: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule slots: %w", err)
	}

	return slots, nil
}

// EventsByUser returns the events the user is registered for, ordered
// by start. This is the interaction history behind recommendations.
func (r *Repo) EventsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, eventsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list events by user: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var (
			e        domain.Event
			society  string
			category string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime,
			&e.Venue, &society, &category, &e.Capacity, &e.Roster,
			&e.OwnerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Society = domain.Society(society)
		e.Category = domain.Category(category)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events by user: %w", err)
	}

	return events, nil
}

// DailyCounts returns per-day registration tallies for an event since
// the given instant. Days with no registrations produce no row.
func (r *Repo) DailyCounts(ctx context.Context, eventID uuid.UUID, since time.Time) ([]domain.DayCount, error) {
	rows, err := r.db.Query(ctx, dailyCountsSQL, eventID, since)
	if err != nil {
		return nil, fmt.Errorf("daily registration counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.DayCount{}
	for rows.Next() {
		var dc domain.DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day counts: %w", err)
	}

	return counts, nil
}

// SetFeedback stores the rating and optional comment on the user's
// registration. Returns domain.ErrNotFound if no registration exists.
func (r *Repo) SetFeedback(ctx context.Context, userID, eventID uuid.UUID, rating int, feedback *string, at time.Time) error {
	tag, err := r.db.Exec(ctx, setFeedbackSQL, userID, eventID, rating, feedback, at)
	if err != nil {
		return mapError(err, "registration", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registration for event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// SetAttended flips the attendance flag on the user's registration.
// Returns domain.ErrNotFound if no registration exists.
func (r *Repo) SetAttended(ctx context.Context, userID, eventID uuid.UUID, attended bool) error {
	tag, err := r.db.Exec(ctx, setAttendedSQL, userID, eventID, attended)
	if err != nil {
		return mapError(err, "registration", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registration for event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRegistrations(rows pgx.Rows) ([]domain.Registration, error) {
	regs := []domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistrationFromRow(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return regs, nil
}

func scanRegistrationFromRow(row pgx.Row) (domain.Registration, error) {
	var reg domain.Registration
	if err := row.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.RegisteredAt,
		&reg.Attended, &reg.Rating, &reg.Feedback, &reg.FeedbackAt); err != nil {
		return domain.Registration{}, err
	}

	return reg, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors. The unique
// constraint on (user_id, event_id) maps to ErrAlreadyRegistered rather
// than the generic ErrAlreadyExists.
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
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyRegistered)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
