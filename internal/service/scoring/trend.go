package scoring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// TrendInfo is the classified direction of an event's daily
// registration counts.
type TrendInfo struct {
	EventID   uuid.UUID
	Direction domain.Trend
	Series    []int
}

// RegistrationTrend classifies whether sign-ups for an event are
// accelerating. The series covers one point per day from the first
// registration inside the window through today.
func (s *Service) RegistrationTrend(ctx context.Context, eventID uuid.UUID) (TrendInfo, error) {
	if eventID == uuid.Nil {
		return TrendInfo{}, domain.NewValidationError("event_id", "required")
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return TrendInfo{}, fmt.Errorf("load event: %w", err)
	}

	since := truncateDay(s.now()).AddDate(0, 0, -trendWindowDays)
	counts, err := s.registrations.DailyCounts(ctx, eventID, since)
	if err != nil {
		return TrendInfo{}, fmt.Errorf("load daily counts: %w", err)
	}

	series := denseSeries(counts, s.now())
	if series == nil {
		series = []int{}
	}

	return TrendInfo{
		EventID:   eventID,
		Direction: trendDirection(series),
		Series:    series,
	}, nil
}
