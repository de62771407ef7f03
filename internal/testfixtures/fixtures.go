// Package testfixtures seeds rows directly into a migrated test database.
package testfixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/platform/search"
)

// ReferenceTime is the instant test clocks start from.
func ReferenceTime() time.Time {
	return time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
}

func User(t *testing.T, conn *sqlx.DB, name string) int64 {
	t.Helper()
	email := fmt.Sprintf("%s@example.com", name)
	return insert(t, conn, `INSERT INTO users (name, email) VALUES (?, ?)`, name, email)
}

type ItemOpts struct {
	Description string
	Unavailable bool
	RequestID   *int64
}

func Item(t *testing.T, conn *sqlx.DB, ownerID int64, name string, opts ItemOpts) int64 {
	t.Helper()
	desc := opts.Description
	if desc == "" {
		desc = name + " description"
	}
	return insert(t, conn,
		`INSERT INTO items (name, description, is_available, owner_id, request_id, search_key) VALUES (?, ?, ?, ?, ?, ?)`,
		name, desc, !opts.Unavailable, ownerID, opts.RequestID, search.Key(name, desc))
}

func Booking(t *testing.T, conn *sqlx.DB, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()
	return insert(t, conn,
		`INSERT INTO bookings (start_at, end_at, item_id, booker_id, status) VALUES (?, ?, ?, ?, ?)`,
		start.UTC(), end.UTC(), itemID, bookerID, status)
}

func Request(t *testing.T, conn *sqlx.DB, requestorID int64, description string, created time.Time) int64 {
	t.Helper()
	return insert(t, conn,
		`INSERT INTO requests (description, requestor_id, created) VALUES (?, ?, ?)`,
		description, requestorID, created.UTC())
}

func insert(t *testing.T, conn *sqlx.DB, q string, args ...any) int64 {
	t.Helper()
	id, err := db.InsertReturningID(context.Background(), conn, q, args...)
	if err != nil {
		t.Fatalf("seeding %q: %v", q, err)
	}
	return id
}
