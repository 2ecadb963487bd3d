package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// Get returns a single event by ID.
func (s *Service) Get(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	if eventID == uuid.Nil {
		return domain.Event{}, domain.NewValidationError("event_id", "required")
	}

	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}

	return e, nil
}
