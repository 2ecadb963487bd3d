// Package event implements organizer-facing event lifecycle operations:
// create, update, delete, get and filtered listing.
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

type eventRepo interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	Create(ctx context.Context, e domain.Event) error
	Update(ctx context.Context, e domain.Event) error
	Delete(ctx context.Context, eventID uuid.UUID) error
	List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// Service provides event lifecycle operations.
type Service struct {
	events eventRepo
	users  userRepo
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new Event service.
func NewService(log *slog.Logger, events eventRepo, users userRepo) *Service {
	return &Service{
		events: events,
		users:  users,
		now:    func() time.Time { return time.Now().UTC() },
		log:    log.With("service", "event"),
	}
}
