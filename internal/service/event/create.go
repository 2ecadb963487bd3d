package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Create creates a new event owned by the current user. Only organizers
// may create events, and only for the society they own.
func (s *Service) Create(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return domain.Event{}, err
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("load actor: %w", err)
	}
	if !actor.IsOrganizer() {
		return domain.Event{}, fmt.Errorf("user %s is not an organizer: %w", actorID, domain.ErrForbidden)
	}
	if !actor.Owns(in.Society) {
		return domain.Event{}, fmt.Errorf("user %s does not own society %s: %w",
			actorID, in.Society, domain.ErrForbidden)
	}

	now := s.now()
	e := domain.Event{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		StartTime:   in.StartTime,
		Venue:       strings.TrimSpace(in.Venue),
		Society:     in.Society,
		Category:    in.Category,
		Capacity:    in.Capacity,
		Roster:      []uuid.UUID{},
		OwnerID:     actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.events.Create(ctx, e); err != nil {
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		"event_id", e.ID, "society", e.Society, "owner_id", actorID)

	return e, nil
}
