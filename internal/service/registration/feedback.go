package registration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// SubmitFeedback records the current user's rating (and optional
// comment) on their registration. Resubmitting overwrites the previous
// rating; the latest feedback wins.
func (s *Service) SubmitFeedback(ctx context.Context, input SubmitFeedbackInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.registrations.SetFeedback(ctx, userID, input.EventID,
		input.Rating, trimOrNil(input.Feedback), s.now())
	if err != nil {
		return fmt.Errorf("set feedback: %w", err)
	}

	s.log.InfoContext(ctx, "feedback submitted",
		slog.String("event_id", input.EventID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("rating", input.Rating),
	)

	return nil
}

// SetAttendance lets the event owner mark whether a registrant showed
// up. Only the owning organizer may do this.
func (s *Service) SetAttendance(ctx context.Context, input SetAttendanceInput) error {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
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
	if event.OwnerID != actorID {
		return fmt.Errorf("event %s: %w", event.ID, domain.ErrForbidden)
	}

	if err := s.registrations.SetAttended(ctx, input.UserID, input.EventID, input.Attended); err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	s.log.InfoContext(ctx, "attendance updated",
		slog.String("event_id", input.EventID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.Bool("attended", input.Attended),
	)

	return nil
}
