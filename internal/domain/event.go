package domain

import (
	"time"

	"github.com/google/uuid"
)

// StartTimeLayout is the wall-clock format used for Event.StartTime.
const StartTimeLayout = "15:04"

// Event is a campus event owned by a society organizer.
//
// Roster is the denormalized set of registered user ids stored alongside the
// event row. It is expected to equal the set of live registration rows for
// the event, but only eventually: the two are written in separate backend
// calls, and the feed layer (or the reconcile command) heals divergence.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Date        time.Time // calendar date, midnight UTC
	StartTime   string    // wall-clock start in StartTimeLayout
	Venue       string
	Society     Society
	Category    Category
	Capacity    int
	Roster      []uuid.UUID
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StartsAt combines Date and StartTime into a single instant (UTC).
// A malformed StartTime falls back to midnight.
func (e *Event) StartsAt() time.Time {
	t, err := time.Parse(StartTimeLayout, e.StartTime)
	if err != nil {
		return e.Date
	}
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// IsPast reports whether the event starts before now.
func (e *Event) IsPast(now time.Time) bool {
	return e.StartsAt().Before(now)
}

// IsFull reports whether the roster has reached capacity.
func (e *Event) IsFull() bool {
	return len(e.Roster) >= e.Capacity
}

// FillRatio returns registered count divided by capacity.
// Zero capacity yields 0 (capacity is validated positive on create).
func (e *Event) FillRatio() float64 {
	if e.Capacity <= 0 {
		return 0
	}
	return float64(len(e.Roster)) / float64(e.Capacity)
}

// HasMember reports whether the user id appears in the roster.
func (e *Event) HasMember(userID uuid.UUID) bool {
	for _, id := range e.Roster {
		if id == userID {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether two events share the exact calendar date
// and start time. Overlapping but non-identical time ranges do NOT count;
// this coarse equality check is the intended conflict semantics.
func (e *Event) ConflictsWith(date time.Time, startTime string) bool {
	return e.Date.Equal(date) && e.StartTime == startTime
}
