package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxVenueLen       = 200
	maxCapacity       = 10000
)

// CreateEventInput holds the parameters for creating an event.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	Venue       string
	Society     domain.Society
	Category    domain.Category
	Capacity    int
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if _, err := time.Parse(domain.StartTimeLayout, i.StartTime); err != nil {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "must be HH:MM"})
	}
	if strings.TrimSpace(i.Venue) == "" {
		errs = append(errs, domain.FieldError{Field: "venue", Message: "required"})
	} else if len(i.Venue) > maxVenueLen {
		errs = append(errs, domain.FieldError{Field: "venue", Message: "max 200 characters"})
	}
	if !i.Society.IsValid() {
		errs = append(errs, domain.FieldError{Field: "society", Message: "unknown society"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Capacity < 1 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be positive"})
	} else if i.Capacity > maxCapacity {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "max 10000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEventInput holds the parameters for updating an event. All fields
// except EventID are required; the transport layer resolves partial
// updates by merging over the current state before calling the service.
type UpdateEventInput struct {
	EventID     uuid.UUID
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	Venue       string
	Society     domain.Society
	Category    domain.Category
	Capacity    int
}

// Validate checks all fields and collects all errors.
func (i UpdateEventInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}
	return CreateEventInput{
		Title:       i.Title,
		Description: i.Description,
		Date:        i.Date,
		StartTime:   i.StartTime,
		Venue:       i.Venue,
		Society:     i.Society,
		Category:    i.Category,
		Capacity:    i.Capacity,
	}.Validate()
}

// ListEventsInput holds the filter parameters for listing events.
type ListEventsInput struct {
	Society   *domain.Society
	Category  *domain.Category
	OwnerID   *uuid.UUID
	Search    *string
	From      *time.Time
	To        *time.Time
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListEventsInput) Validate() error {
	var errs []domain.FieldError

	if i.Society != nil && !i.Society.IsValid() {
		errs = append(errs, domain.FieldError{Field: "society", Message: "unknown society"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
