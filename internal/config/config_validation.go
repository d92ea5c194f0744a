// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is empty", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: negative session duration", ErrInvalidAppConfigs)
	}

	// zero selects bcrypt.DefaultCost
	if cost := cfg.App.BcryptCost; cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost %d is out of range [%d, %d]", ErrInvalidAppConfigs, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	return cfg.Storage.DB.validate()
}

func (db DB) validate() error {
	switch db.Driver {
	case DriverSQLite:
		if db.DSN == "" {
			return fmt.Errorf("%w: sqlite3 requires a database file path", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverMySQL:
		if db.DSN != "" {
			return nil
		}
		if db.Host == "" || db.User == "" || db.Name == "" {
			return fmt.Errorf("%w: %s requires a DSN or host, user and database", ErrInvalidStorageConfigs, db.Driver)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	return nil
}
