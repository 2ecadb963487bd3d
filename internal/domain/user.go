package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Authentication and profile details live in
// the external gateway; only the fields the core engines read are here.
type User struct {
	ID           uuid.UUID
	DisplayName  string
	Role         Role
	OwnedSociety *Society // set only for organizers
	CreatedAt    time.Time
}

// IsOrganizer reports whether the user can create and manage events.
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}

// Owns reports whether the user is the organizer of the given society.
func (u *User) Owns(s Society) bool {
	return u.OwnedSociety != nil && *u.OwnedSociety == s
}
