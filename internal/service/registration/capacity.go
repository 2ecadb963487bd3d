package registration

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// CapacityInfo is a point-in-time utilization snapshot for one event,
// derived from the denormalized roster.
type CapacityInfo struct {
	EventID    uuid.UUID
	Capacity   int
	Registered int
	Available  int
	Percentage int // rounded to the nearest whole percent
}

// GetCapacity returns the utilization snapshot for an event.
func (s *Service) GetCapacity(ctx context.Context, eventID uuid.UUID) (CapacityInfo, error) {
	if eventID == uuid.Nil {
		return CapacityInfo{}, domain.NewValidationError("event_id", "required")
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return CapacityInfo{}, fmt.Errorf("load event: %w", err)
	}

	// Raw arithmetic, no clamping: while the roster briefly exceeds
	// capacity (concurrent registrations near the limit), the snapshot
	// reports negative availability and >100%, keeping the three
	// numbers consistent with each other.
	registered := len(event.Roster)
	available := event.Capacity - registered

	percentage := 0
	if event.Capacity > 0 {
		percentage = int(math.Round(100 * float64(registered) / float64(event.Capacity)))
	}

	return CapacityInfo{
		EventID:    event.ID,
		Capacity:   event.Capacity,
		Registered: registered,
		Available:  available,
		Percentage: percentage,
	}, nil
}
