package registration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Register signs the current user up for an event.
//
// Preconditions are checked in a fixed order: event exists, capacity
// available, not already registered, no exact (date, start time) clash
// with another of the user's registrations.
//
// The write is two sequential statements without a wrapping
// transaction: the registration row first, then the roster append. If
// the append fails the registration still stands — the caller gets
// success, the roster is temporarily stale, and the change feed (or
// the reconcile command) repairs it. Registration rows are the source
// of truth.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return fmt.Errorf("load event: %w", err)
	}

	if event.IsFull() {
		return fmt.Errorf("event %s: %w", event.ID, domain.ErrCapacityExceeded)
	}

	exists, err := s.registrations.Exists(ctx, userID, event.ID)
	if err != nil {
		return fmt.Errorf("check existing registration: %w", err)
	}
	if exists {
		return fmt.Errorf("event %s: %w", event.ID, domain.ErrAlreadyRegistered)
	}

	slots, err := s.registrations.ListSlotsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	for _, slot := range slots {
		if slot.Conflicts(event.Date, event.StartTime) {
			return fmt.Errorf("event %s clashes with event %s: %w",
				event.ID, slot.EventID, domain.ErrScheduleConflict)
		}
	}

	reg := domain.Registration{
		ID:           uuid.New(),
		UserID:       userID,
		EventID:      event.ID,
		RegisteredAt: s.now(),
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}

	// Past this point the registration is committed. A roster failure
	// leaves the event row stale, never the user unregistered.
	if _, err := s.events.AppendToRoster(ctx, event.ID, userID); err != nil {
		s.log.WarnContext(ctx, "roster append failed after registration insert, roster is stale",
			slog.String("event_id", event.ID.String()),
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	s.log.InfoContext(ctx, "user registered for event",
		slog.String("event_id", event.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}
