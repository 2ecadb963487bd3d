package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

const (
	maxBroadcastTitleLen = 200
	maxBroadcastBodyLen  = 2000
)

// BroadcastInput holds the parameters for notifying an event's roster.
type BroadcastInput struct {
	EventID uuid.UUID
	Title   string
	Body    string
}

// Validate checks all fields and collects all errors.
func (i BroadcastInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxBroadcastTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	} else if len(i.Body) > maxBroadcastBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Broadcast creates one notification per roster member of the event.
// Only the event owner may broadcast. An empty roster is a no-op.
// Returns the number of recipients.
func (s *Service) Broadcast(ctx context.Context, in BroadcastInput) (int, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return 0, err
	}

	e, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return 0, fmt.Errorf("load event: %w", err)
	}
	if e.OwnerID != actorID {
		return 0, fmt.Errorf("user %s does not own event %s: %w",
			actorID, e.ID, domain.ErrForbidden)
	}

	if len(e.Roster) == 0 {
		s.log.InfoContext(ctx, "broadcast skipped, empty roster", "event_id", e.ID)
		return 0, nil
	}

	now := s.now()
	eventID := e.ID
	ns := make([]domain.Notification, 0, len(e.Roster))
	for _, recipientID := range e.Roster {
		ns = append(ns, domain.Notification{
			ID:          uuid.New(),
			Title:       strings.TrimSpace(in.Title),
			Body:        strings.TrimSpace(in.Body),
			EventID:     &eventID,
			RecipientID: recipientID,
			SenderID:    actorID,
			SentAt:      now,
		})
	}

	if err := s.notifications.CreateBatch(ctx, ns); err != nil {
		return 0, fmt.Errorf("create notifications: %w", err)
	}

	s.log.InfoContext(ctx, "broadcast sent",
		"event_id", e.ID, "recipients", len(ns))

	return len(ns), nil
}
