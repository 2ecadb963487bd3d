package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Delete removes an event. Only the owner may delete. Registrations and
// notifications referencing the event are removed by the database
// cascade.
func (s *Service) Delete(ctx context.Context, eventID uuid.UUID) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if eventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}

	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load event: %w", err)
	}
	if e.OwnerID != actorID {
		return fmt.Errorf("user %s does not own event %s: %w",
			actorID, e.ID, domain.ErrForbidden)
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.InfoContext(ctx, "event deleted",
		"event_id", eventID, "registered", len(e.Roster))

	return nil
}
