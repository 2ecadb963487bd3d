// Package event implements the Event repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the list query builds its WHERE
// clause dynamically with squirrel.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/unihub/campus-events-backend/internal/adapter/postgres"
	"github.com/unihub/campus-events-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const eventColumns = `id, title, description, date, start_time, venue, society, category,
       capacity, roster, owner_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1`

const createSQL = `
INSERT INTO events (id, title, description, date, start_time, venue, society, category,
                    capacity, roster, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const updateSQL = `
UPDATE events
SET title = $2, description = $3, date = $4, start_time = $5, venue = $6,
    society = $7, category = $8, capacity = $9, updated_at = $10
WHERE id = $1`

const deleteSQL = `DELETE FROM events WHERE id = $1`

const appendToRosterSQL = `
UPDATE events
SET roster = array_append(roster, $2), updated_at = now()
WHERE id = $1 AND NOT roster @> ARRAY[$2]::uuid[]`

const removeFromRosterSQL = `
UPDATE events
SET roster = array_remove(roster, $2), updated_at = now()
WHERE id = $1 AND roster @> ARRAY[$2]::uuid[]`

const recomputeRosterSQL = `
UPDATE events
SET roster = (
    SELECT COALESCE(array_agg(r.user_id ORDER BY r.registered_at), '{}'::uuid[])
    FROM registrations r
    WHERE r.event_id = events.id
), updated_at = now()
WHERE id = $1`

const listIDsSQL = `SELECT id FROM events ORDER BY date, start_time`

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	row := r.db.QueryRow(ctx, getByIDSQL, eventID)
	e, err := scanEventFromRow(row)
	if err != nil {
		return domain.Event{}, mapError(err, "event", eventID)
	}

	return e, nil
}

// Create inserts a new event row.
func (r *Repo) Create(ctx context.Context, e domain.Event) error {
	roster := e.Roster
	if roster == nil {
		roster = []uuid.UUID{}
	}

	_, err := r.db.Exec(ctx, createSQL,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.Venue,
		string(e.Society), string(e.Category), e.Capacity, roster,
		e.OwnerID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "event", e.ID)
	}

	return nil
}

// Update rewrites the mutable fields of an event. The roster is owned by
// the registration flow and is never touched here.
// Returns domain.ErrNotFound if the event does not exist.
func (r *Repo) Update(ctx context.Context, e domain.Event) error {
	tag, err := r.db.Exec(ctx, updateSQL,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.Venue,
		string(e.Society), string(e.Category), e.Capacity, e.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "event", e.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", e.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an event by ID.
// Returns domain.ErrNotFound if the event does not exist.
func (r *Repo) Delete(ctx context.Context, eventID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSQL, eventID)
	if err != nil {
		return mapError(err, "event", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// List returns events matching the filter.
func (r *Repo) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	normalizeFilter(&f)

	builder := squirrel.Select(eventColumns).
		From("events").
		PlaceholderFormat(squirrel.Dollar)

	if f.Society != nil {
		builder = builder.Where(squirrel.Eq{"society": string(*f.Society)})
	}
	if f.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": string(*f.Category)})
	}
	if f.OwnerID != nil {
		builder = builder.Where(squirrel.Eq{"owner_id": *f.OwnerID})
	}
	if f.Search != nil && *f.Search != "" {
		builder = builder.Where(squirrel.ILike{"title": "%" + *f.Search + "%"})
	}
	if f.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *f.To})
	}

	builder = builder.
		OrderBy(orderBy(f)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

// ListUpcoming returns events dated on or after from, ordered by start.
// Used as the candidate pool for recommendations.
func (r *Repo) ListUpcoming(ctx context.Context, from time.Time) ([]domain.Event, error) {
	return r.List(ctx, domain.EventFilter{From: &from, Limit: maxLimit})
}

// AppendToRoster adds the user to the event roster unless already
// present. Returns true if the roster changed.
//
// The guard is idempotence only, not capacity: two concurrent appends
// can both pass the service-level capacity check and both land. The
// reconcile pass trues the roster up from registration rows afterwards.
func (r *Repo) AppendToRoster(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, appendToRosterSQL, eventID, userID)
	if err != nil {
		return false, mapError(err, "event", eventID)
	}

	return tag.RowsAffected() > 0, nil
}

// RemoveFromRoster removes the user from the event roster.
// Returns true if the roster changed; absence is not an error.
func (r *Repo) RemoveFromRoster(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, removeFromRosterSQL, eventID, userID)
	if err != nil {
		return false, mapError(err, "event", eventID)
	}

	return tag.RowsAffected() > 0, nil
}

// RecomputeRoster rebuilds the event roster from the registration rows,
// ordered by registration time. Registrations are the source of truth;
// this is the repair step for rosters that drifted after partial writes.
func (r *Repo) RecomputeRoster(ctx context.Context, eventID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, recomputeRosterSQL, eventID)
	if err != nil {
		return mapError(err, "event", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// ListIDs returns the IDs of all events, ordered by start.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, listIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list event ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event ids: %w", err)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanEvents scans multiple rows into a domain.Event slice.
func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		e, err := scanEventFromRow(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if events == nil {
		events = []domain.Event{}
	}

	return events, nil
}

// scanEventFromRow scans a single event row.
func scanEventFromRow(row pgx.Row) (domain.Event, error) {
	var (
		e        domain.Event
		society  string
		category string
	)

	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime,
		&e.Venue, &society, &category, &e.Capacity, &e.Roster,
		&e.OwnerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return domain.Event{}, err
	}

	e.Society = domain.Society(society)
	e.Category = domain.Category(category)
	if e.Roster == nil {
		e.Roster = []uuid.UUID{}
	}

	return e, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

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
