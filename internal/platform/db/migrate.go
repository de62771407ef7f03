package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// Migrate はドライバに対応したディレクトリのマイグレーションを最新まで適用する
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	dialect, dir, err := dialectFor(conn.DriverName())
	if err != nil {
		return err
	}
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	goose.SetBaseFS(sub)
	goose.SetLogger(goose.NopLogger())
	if err := goose.UpContext(ctx, conn.DB, dir); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func dialectFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case DriverMySQL:
		return "mysql", "mysql", nil
	case DriverPostgres:
		return "postgres", "postgres", nil
	case DriverSQLite, "sqlite3":
		return "sqlite3", "sqlite", nil
	}
	return "", "", fmt.Errorf("未対応のドライバ: %s", driver)
}
