package registration

import (
	"strings"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// RegisterInput holds the parameters for registering for an event.
type RegisterInput struct {
	EventID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}
	return nil
}

// UnregisterInput holds the parameters for withdrawing from an event.
type UnregisterInput struct {
	EventID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UnregisterInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}
	return nil
}

// SubmitFeedbackInput holds the parameters for rating an attended event.
type SubmitFeedbackInput struct {
	EventID  uuid.UUID
	Rating   int
	Feedback *string
}

// Validate checks all fields and collects all errors.
func (i SubmitFeedbackInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Feedback != nil && len(strings.TrimSpace(*i.Feedback)) > 2000 {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetAttendanceInput holds the parameters for marking attendance.
type SetAttendanceInput struct {
	EventID  uuid.UUID
	UserID   uuid.UUID
	Attended bool
}

// Validate checks all fields and collects all errors.
func (i SetAttendanceInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
