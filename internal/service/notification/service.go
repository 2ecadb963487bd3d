// Package notification implements organizer broadcasts and the
// per-user notification feed. Delivery transport is out of scope;
// notification rows are the contract with the presentation layer.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

type notificationRepo interface {
	CreateBatch(ctx context.Context, ns []domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
}

// Service provides notification operations.
type Service struct {
	notifications notificationRepo
	events        eventRepo
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new Notification service.
func NewService(log *slog.Logger, notifications notificationRepo, events eventRepo) *Service {
	return &Service{
		notifications: notifications,
		events:        events,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With("service", "notification"),
	}
}
