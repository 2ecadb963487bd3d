// Package registration implements event sign-up, withdrawal, capacity
// queries and post-event feedback.
package registration

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

type eventRepo interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	AppendToRoster(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
	RemoveFromRoster(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
}

type registrationRepo interface {
	Create(ctx context.Context, reg domain.Registration) error
	Delete(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (domain.Registration, error)
	ListSlotsByUser(ctx context.Context, userID uuid.UUID) ([]domain.ScheduleSlot, error)
	SetFeedback(ctx context.Context, userID, eventID uuid.UUID, rating int, feedback *string, at time.Time) error
	SetAttended(ctx context.Context, userID, eventID uuid.UUID, attended bool) error
}

// Service provides registration operations.
type Service struct {
	events        eventRepo
	registrations registrationRepo
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new Registration service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	registrations registrationRepo,
) *Service {
	return &Service{
		events:        events,
		registrations: registrations,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With("service", "registration"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
