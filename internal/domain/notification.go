package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is produced by organizer broadcast actions and consumed by
// the presentation layer. Delivery transport is out of scope; rows are the
// contract.
type Notification struct {
	ID          uuid.UUID
	Title       string
	Body        string
	EventID     *uuid.UUID
	RecipientID uuid.UUID
	SenderID    uuid.UUID
	SentAt      time.Time
	Read        bool
}
