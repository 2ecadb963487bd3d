package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for registration feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// Registration is the canonical per-user, per-event sign-up record.
// At most one registration exists per (UserID, EventID) pair; the
// registrations table enforces this with a unique constraint.
type Registration struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	EventID      uuid.UUID
	RegisteredAt time.Time
	Attended     bool
	Rating       *int
	Feedback     *string
	FeedbackAt   *time.Time
}

// HasRating reports whether the registration carries a rating.
func (r *Registration) HasRating() bool {
	return r.Rating != nil
}

// ScheduleSlot is the (date, start time) occupied by one of a user's
// registrations. Used for coarse conflict checks on register.
type ScheduleSlot struct {
	EventID   uuid.UUID
	Date      time.Time
	StartTime string
}

// Conflicts reports whether the slot occupies exactly the given date and
// start time.
func (s ScheduleSlot) Conflicts(date time.Time, startTime string) bool {
	return s.Date.Equal(date) && s.StartTime == startTime
}

// DayCount is a per-day registration tally for one event.
type DayCount struct {
	Day   time.Time
	Count int
}
