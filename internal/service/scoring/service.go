package scoring

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/config"
	"github.com/unihub/campus-events-backend/internal/domain"
)

type eventRepo interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]domain.Event, error)
}

type registrationRepo interface {
	EventsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Event, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error)
	DailyCounts(ctx context.Context, eventID uuid.UUID, since time.Time) ([]domain.DayCount, error)
}

// trendWindowDays bounds how far back the registration trend looks.
const trendWindowDays = 30

// Service provides recommendation and analytics operations.
type Service struct {
	events        eventRepo
	registrations registrationRepo
	cfg           config.RecommendConfig
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new Scoring service.
func NewService(
	log *slog.Logger,
	cfg config.RecommendConfig,
	events eventRepo,
	registrations registrationRepo,
) *Service {
	return &Service{
		events:        events,
		registrations: registrations,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With("service", "scoring"),
	}
}
