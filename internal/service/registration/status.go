package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// Status describes the current user's standing for one event.
type Status struct {
	EventID      uuid.UUID
	Registered   bool
	Registration *domain.Registration
}

// GetStatus reports whether the current user is registered for the
// event, and the registration details if so.
func (s *Service) GetStatus(ctx context.Context, eventID uuid.UUID) (Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Status{}, domain.ErrUnauthorized
	}
	if eventID == uuid.Nil {
		return Status{}, domain.NewValidationError("event_id", "required")
	}

	reg, err := s.registrations.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Status{EventID: eventID, Registered: false}, nil
		}
		return Status{}, fmt.Errorf("load registration: %w", err)
	}

	return Status{EventID: eventID, Registered: true, Registration: &reg}, nil
}
