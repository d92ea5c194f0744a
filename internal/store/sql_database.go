package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/migrations"
	"github.com/Masterminds/squirrel"
)

// DB is a *sql.DB pool bound to one SQL dialect. It carries the dialect's
// error classifier and squirrel placeholder format so repositories stay
// driver agnostic.
type DB struct {
	*sql.DB
	driver             string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens a connection pool for cfg.Driver and pings it.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverMySQL:
		return NewConnectMySQL(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate creates the accounts table if it does not exist yet.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// open is shared by the dialect connectors: it opens the pool, applies the
// pool limits and pings the database.
func open(ctx context.Context, driverName, dsn string, cfg config.DB, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Err(err).Str("func", "store.open").Str("driver", cfg.Driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.open").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "store.open").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return conn, nil
}
