// Package migrations creates the accounts table at startup. The schema is
// kept per SQL dialect and embedded into the binary.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// source returns the goose dialect and the embedded directory for driver.
func source(driver string) (dialect string, dir string, err error) {
	switch driver {
	case config.DriverPostgres:
		return "pgx", "postgres", nil
	case config.DriverMySQL:
		return "mysql", "mysql", nil
	case config.DriverSQLite:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies all pending migrations for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, dir, err := source(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
