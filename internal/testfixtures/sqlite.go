package testfixtures

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/platform/db"
)

// NewTestDB creates a fresh in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.Migrate(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}
