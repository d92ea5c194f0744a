package store

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
)

const defaultMySQLPort = 3306

// NewConnectMySQL opens a go-sql-driver/mysql pool.
func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, err := mysqlDSN(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid mysql dsn")
		return nil, err
	}

	conn, err := open(ctx, "mysql", dsn, cfg, log)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                 conn,
		driver:             config.DriverMySQL,
		placeholder:        squirrel.Question,
		errorClassificator: NewMySQLErrorClassifier(),
		logger:             log,
	}, nil
}

// mysqlDSN builds a driver DSN from cfg. A configured DSN is parsed and
// re-emitted so that parseTime is always on; created_at scans into
// time.Time only with it.
func mysqlDSN(cfg config.DB) (string, error) {
	if cfg.DSN != "" {
		myCfg, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("error parsing mysql dsn: %w", err)
		}
		myCfg.ParseTime = true

		return myCfg.FormatDSN(), nil
	}

	port := cfg.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	myCfg := mysql.NewConfig()
	myCfg.User = cfg.User
	myCfg.Passwd = cfg.Password
	myCfg.Net = "tcp"
	myCfg.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	myCfg.DBName = cfg.Name
	myCfg.ParseTime = true

	return myCfg.FormatDSN(), nil
}
