package registration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Unregister withdraws the current user from an event. Withdrawing
// without a live registration is a no-op, not an error.
//
// The roster removal runs even when no row was deleted: if an earlier
// crash left the user on the roster without a registration row, the
// withdraw heals the divergence instead of waiting for a reconcile.
func (s *Service) Unregister(ctx context.Context, input UnregisterInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	deleted, err := s.registrations.Delete(ctx, userID, input.EventID)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	if _, err := s.events.RemoveFromRoster(ctx, input.EventID, userID); err != nil {
		s.log.WarnContext(ctx, "roster removal failed after registration delete, roster is stale",
			slog.String("event_id", input.EventID.String()),
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	if deleted {
		s.log.InfoContext(ctx, "user unregistered from event",
			slog.String("event_id", input.EventID.String()),
			slog.String("user_id", userID.String()),
		)
	}

	return nil
}
