// Package notification implements the Notification repository using
// PostgreSQL.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/unihub/campus-events-backend/internal/adapter/postgres"
	"github.com/unihub/campus-events-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const notificationColumns = `id, title, body, event_id, recipient_id, sender_id, sent_at, read`

const listByRecipientSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE recipient_id = $1
ORDER BY sent_at DESC
LIMIT $2 OFFSET $3`

const markReadSQL = `
UPDATE notifications
SET read = true
WHERE id = $1 AND recipient_id = $2`

const unreadCountSQL = `
SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT read`

// CreateBatch inserts all notifications in a single multi-row statement.
// An empty batch is a no-op.
func (r *Repo) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	builder := squirrel.Insert("notifications").
		Columns("id", "title", "body", "event_id", "recipient_id", "sender_id", "sent_at", "read").
		PlaceholderFormat(squirrel.Dollar)
	for _, n := range ns {
		builder = builder.Values(n.ID, n.Title, n.Body, n.EventID, n.RecipientID, n.SenderID, n.SentAt, n.Read)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert notifications query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "notification", ns[0].ID)
	}

	return nil
}

// ListByRecipient returns the recipient's notifications, newest first.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, listByRecipientSQL, recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	ns := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.EventID,
			&n.RecipientID, &n.SenderID, &n.SentAt, &n.Read); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		ns = append(ns, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return ns, nil
}

// MarkRead marks one of the recipient's notifications as read.
// Returns domain.ErrNotFound if the notification does not exist or
// belongs to another recipient.
func (r *Repo) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, markReadSQL, notificationID, recipientID)
	if err != nil {
		return mapError(err, "notification", notificationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	return nil
}

// UnreadCount returns the number of unread notifications.
func (r *Repo) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, unreadCountSQL, recipientID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
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
