package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// sqliteMemoryDSN is the DSN of a private in-memory SQLite database.
const sqliteMemoryDSN = ":memory:"

// NewConnectSQLite opens the SQLite database cfg.DSN. A plain file path is
// created when it does not exist; ":memory:" and "file:" URIs are handed to
// the driver as is.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := open(ctx, "sqlite3", cfg.DSN, cfg, log)
	if err != nil {
		return nil, err
	}

	// every connection to ":memory:" is a separate database
	if cfg.DSN == sqliteMemoryDSN {
		conn.SetMaxOpenConns(1)
	}

	return &DB{
		DB:                 conn,
		driver:             config.DriverSQLite,
		placeholder:        squirrel.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

// isSQLiteFilePath reports whether dsn names a plain database file rather
// than an in-memory database or a "file:" URI.
func isSQLiteFilePath(dsn string) bool {
	return dsn != sqliteMemoryDSN && !strings.HasPrefix(dsn, "file:")
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if !isSQLiteFilePath(dbFile) {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
