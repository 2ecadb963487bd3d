package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Update rewrites an event's mutable fields. Only the owner may update.
// The roster is never touched here; capacity cannot drop below the
// current roster size.
func (s *Service) Update(ctx context.Context, in UpdateEventInput) (domain.Event, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return domain.Event{}, err
	}

	e, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("load event: %w", err)
	}
	if e.OwnerID != actorID {
		return domain.Event{}, fmt.Errorf("user %s does not own event %s: %w",
			actorID, e.ID, domain.ErrForbidden)
	}
	if in.Capacity < len(e.Roster) {
		return domain.Event{}, domain.NewValidationError("capacity",
			fmt.Sprintf("cannot drop below %d registered attendees", len(e.Roster)))
	}

	e.Title = strings.TrimSpace(in.Title)
	e.Description = strings.TrimSpace(in.Description)
	e.Date = in.Date
	e.StartTime = in.StartTime
	e.Venue = strings.TrimSpace(in.Venue)
	e.Society = in.Society
	e.Category = in.Category
	e.Capacity = in.Capacity
	e.UpdatedAt = s.now()

	if err := s.events.Update(ctx, e); err != nil {
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}

	s.log.InfoContext(ctx, "event updated", "event_id", e.ID)

	return e, nil
}
