package event

import (
	"github.com/unihub/campus-events-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByDate      = "date"
	sortByCreatedAt = "created_at"
	sortByTitle     = "title"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f *domain.EventFilter) {
	switch f.SortBy {
	case sortByDate, sortByCreatedAt, sortByTitle:
		// valid
	default:
		f.SortBy = sortByDate
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderASC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}

// orderBy returns the ORDER BY expression for a normalized filter.
// Date sorting falls back to start_time so same-day events keep a
// stable wall-clock order.
func orderBy(f domain.EventFilter) string {
	if f.SortBy == sortByDate {
		return "date " + f.SortOrder + ", start_time " + f.SortOrder
	}
	return f.SortBy + " " + f.SortOrder
}
