// Package feed distributes row-change signals from the database to
// in-process subscribers and maintains refetch-on-change views over
// query results.
package feed

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Op is the kind of row change that produced a signal.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Change is a single row-change signal. It carries identity only, never
// row data: subscribers refetch whatever they display.
type Change struct {
	Table   string     `json:"table"`
	Op      Op         `json:"op"`
	ID      uuid.UUID  `json:"id"`
	EventID *uuid.UUID `json:"event_id,omitempty"`
	UserID  *uuid.UUID `json:"user_id,omitempty"`
}

// DecodeChange parses a notification payload produced by the database
// triggers into a Change.
func DecodeChange(payload string) (Change, error) {
	var c Change
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return Change{}, fmt.Errorf("decode change payload: %w", err)
	}
	if c.Table == "" {
		return Change{}, fmt.Errorf("decode change payload: missing table")
	}
	switch c.Op {
	case OpInsert, OpUpdate, OpDelete:
	default:
		return Change{}, fmt.Errorf("decode change payload: unknown op %q", c.Op)
	}
	return c, nil
}

// Scope selects the subset of changes a subscriber cares about.
// Zero-value fields match everything.
type Scope struct {
	Table   string
	EventID uuid.UUID
	UserID  uuid.UUID
}

// Matches reports whether the change falls inside the scope.
func (s Scope) Matches(c Change) bool {
	if s.Table != "" && s.Table != c.Table {
		return false
	}
	if s.EventID != uuid.Nil && (c.EventID == nil || *c.EventID != s.EventID) {
		return false
	}
	if s.UserID != uuid.Nil && (c.UserID == nil || *c.UserID != s.UserID) {
		return false
	}
	return true
}
