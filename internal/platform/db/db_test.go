package db_test

import (
	"context"
	"errors"
	"testing"

	"shareit-backend/internal/platform/db"
	"shareit-backend/internal/testfixtures"
)

func TestMigrateCreatesSchema(t *testing.T) {
	conn := testfixtures.NewTestDB(t)
	for _, table := range []string{"users", "items", "bookings", "comments", "requests"} {
		var n int
		if err := conn.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
	// 2回目は何もしない
	if err := db.Migrate(context.Background(), conn); err != nil {
		t.Errorf("re-running migrations: %v", err)
	}
}

func TestConstraintErrors(t *testing.T) {
	conn := testfixtures.NewTestDB(t)
	ctx := context.Background()

	id, err := db.InsertReturningID(ctx, conn, `INSERT INTO users (name, email) VALUES (?, ?)`, "a", "a@example.com")
	if err != nil || id == 0 {
		t.Fatalf("insert: id=%d err=%v", id, err)
	}
	_, err = db.InsertReturningID(ctx, conn, `INSERT INTO users (name, email) VALUES (?, ?)`, "b", "a@example.com")
	if !db.IsDuplicateKey(err) {
		t.Errorf("expected duplicate key, got %v", err)
	}
	if db.IsForeignKeyViolation(err) {
		t.Error("duplicate key is not a foreign key violation")
	}

	_, err = conn.ExecContext(ctx,
		`INSERT INTO items (name, description, is_available, owner_id, search_key) VALUES (?, ?, ?, ?, ?)`,
		"x", "y", true, 999, "x\ny")
	if !db.IsForeignKeyViolation(err) {
		t.Errorf("expected foreign key violation, got %v", err)
	}

	if db.IsDuplicateKey(errors.New("UNIQUE")) || db.IsDuplicateKey(nil) {
		t.Error("plain errors are not driver errors")
	}
}

func TestRunInTxRollsBack(t *testing.T) {
	conn := testfixtures.NewTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.RunInTx(ctx, conn, nil, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO users (name, email) VALUES (?, ?)`, "a", "a@example.com"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	var n int
	if err := conn.Get(&n, `SELECT COUNT(*) FROM users`); err != nil || n != 0 {
		t.Errorf("expected rollback, got %d rows (%v)", n, err)
	}
}
