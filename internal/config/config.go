// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// go-sign-gate server. It aggregates all sub-configurations and is populated
// by merging defaults, a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, hashing, and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control sessions,
// password hashing, and logging.
type App struct {
	// SessionSecret is the key used to sign session cookies.
	// Must be kept confidential.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET" json:"-"`

	// SessionIssuer is the "iss" claim embedded in every session token and
	// checked when the session cookie is read back.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration limits how long a session stays valid after sign-in.
	// Zero keeps the session until the browser discards the cookie.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SecureCookie marks the session cookie as Secure (HTTPS only).
	// Env: APP_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// BcryptCost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5501").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
//
// Either DSN or the Host/User/Password/Name quartet must be provided for
// Postgres and MySQL. SQLite always uses DSN as the database file path.
type DB struct {
	// Driver selects the database dialect: "postgres", "mysql" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// Host is the database server host name.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Port is the database server port. Zero uses the driver default.
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT"`

	// User is the database user name.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database user password.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD" json:"-"`

	// Name is the database name.
	// Env: STORAGE_DB_DATABASE
	Name string `env:"DATABASE"`

	// DSN is a complete driver-specific connection string. When set it takes
	// precedence over the individual connection parameters.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"-"`

	// MaxOpenConns caps the number of open connections in the pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps the number of idle connections kept in the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (if present)
//  3. Legacy environment variables (FLASK_SECRET_KEY, DB_HOST, DB_USER,
//     DB_PASSWORD, DB_DATABASE)
//  4. Environment variables
//  5. Command-line flags
//  6. JSON file (path resolved from sources 4 and 5)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvFile).
		withLegacyEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// defaults returns the baseline configuration every other source is merged
// on top of.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer: "go-sign-gate",
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				MaxOpenConns: 10,
				MaxIdleConns: 4,
			},
		},
		Server: Server{
			HTTPAddress: "localhost:5501",
		},
	}
}
