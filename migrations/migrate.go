// Package migrations embeds the SQL schema of the notes database and applies
// it with goose. PostgreSQL and SQLite keep separate migration directories
// because their column types differ.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Migrate applies every pending migration of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, dir, err := resolveDialect(dialect)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolveDialect(dialect string) (goose.Dialect, string, error) {
	switch dialect {
	case DialectPostgres:
		return goose.DialectPostgres, "postgres", nil
	case DialectSQLite:
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}
}
