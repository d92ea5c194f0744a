package store

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const defaultPostgresPort = 5432

// NewConnectPostgres opens a pgx-backed pool.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := open(ctx, "pgx", postgresDSN(cfg), cfg, log)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		placeholder:        squirrel.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

// postgresDSN returns cfg.DSN when set, otherwise a postgres:// URL built
// from the individual connection parameters.
func postgresDSN(cfg config.DB) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	port := cfg.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		Path:   "/" + cfg.Name,
	}

	return u.String()
}
