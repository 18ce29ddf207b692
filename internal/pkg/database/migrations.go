package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	PgxDriverName   = "pgx"
	PostgresDialect = "postgres"
)

// MigrateDatabase applies every pending goose migration found in dir of the
// migrations filesystem.
func MigrateDatabase(ctx context.Context, databaseURL string, migrations fs.FS, dir string) error {
	db, err := sql.Open(PgxDriverName, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(PostgresDialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
