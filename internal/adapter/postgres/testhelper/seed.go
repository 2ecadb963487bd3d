package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unihub/campus-events-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a student user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		DisplayName: "Test Student " + suffix,
		Role:        domain.RoleStudent,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, display_name, role, owned_society, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.DisplayName, string(user.Role), nil, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedOrganizer creates a society-organizer user owning the given society.
func SeedOrganizer(t *testing.T, pool *pgxpool.Pool, society domain.Society) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		DisplayName:  "Test Organizer " + suffix,
		Role:         domain.RoleOrganizer,
		OwnedSociety: &society,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, display_name, role, owned_society, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.DisplayName, string(user.Role), string(society), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganizer insert user: %v", err)
	}

	return user
}

// SeedEvent creates an upcoming event owned by ownerID with an empty roster.
// Returns a filled domain.Event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, society domain.Society, capacity int) domain.Event {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:          uuid.New(),
		Title:       "Test Event " + suffix,
		Description: "Seeded by testhelper",
		Date:        now.AddDate(0, 0, 7).Truncate(24 * time.Hour),
		StartTime:   "18:00",
		Venue:       "Test Hall " + suffix,
		Society:     society,
		Category:    domain.CategoryWorkshop,
		Capacity:    capacity,
		Roster:      []uuid.UUID{},
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, title, description, date, start_time, venue, society, category,
		                     capacity, roster, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		event.ID, event.Title, event.Description, event.Date, event.StartTime, event.Venue,
		string(event.Society), string(event.Category), event.Capacity, event.Roster,
		event.OwnerID, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return event
}

// SeedRegistration creates a registration row for userID on eventID and
// appends the user to the event roster, mirroring the two writes the
// registration flow performs. Returns a filled domain.Registration.
func SeedRegistration(t *testing.T, pool *pgxpool.Pool, userID, eventID uuid.UUID) domain.Registration {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	reg := domain.Registration{
		ID:           uuid.New(),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO registrations (id, user_id, event_id, registered_at, attended)
		 VALUES ($1, $2, $3, $4, false)`,
		reg.ID, reg.UserID, reg.EventID, reg.RegisteredAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRegistration insert registration: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE events
		 SET roster = array_append(roster, $2)
		 WHERE id = $1 AND NOT roster @> ARRAY[$2]::uuid[]`,
		reg.EventID, reg.UserID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRegistration append roster: %v", err)
	}

	return reg
}
