package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventFilter contains filtering/pagination parameters for event listings.
// Zero values mean "no filter"; the storage layer applies defaults for
// sorting and limits.
type EventFilter struct {
	Society  *Society
	Category *Category
	OwnerID  *uuid.UUID

	// Search matches the title, case-insensitive substring.
	Search *string

	// From/To bound the event date (inclusive).
	From *time.Time
	To   *time.Time

	// SortBy: "date", "created_at", "title". Default: "date".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "ASC".
	SortOrder string

	// Limit is the maximum number of events to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of events to skip.
	Offset int
}
