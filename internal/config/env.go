// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnvFile is the file loaded into the process environment before
// environment variables are parsed.
const defaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv holds the variable names used by existing deployments of the
// sign-in app, which ran against MySQL.
type legacyEnv struct {
	SecretKey  string `env:"FLASK_SECRET_KEY"`
	DBHost     string `env:"DB_HOST"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_DATABASE"`
}

// parseLegacyEnv maps the legacy variable names onto a config. The MySQL
// driver is selected when any DB_* variable is present.
func parseLegacyEnv() (*StructuredConfig, error) {
	legacy := &legacyEnv{}
	if err := env.Parse(legacy); err != nil {
		return nil, fmt.Errorf("error getting legacy env configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{SessionSecret: legacy.SecretKey},
		Storage: Storage{DB: DB{
			Host:     legacy.DBHost,
			User:     legacy.DBUser,
			Password: legacy.DBPassword,
			Name:     legacy.DBName,
		}},
	}
	if legacy.DBHost != "" || legacy.DBUser != "" || legacy.DBPassword != "" || legacy.DBName != "" {
		cfg.Storage.DB.Driver = DriverMySQL
	}

	return cfg, nil
}

// loadDotEnv copies the variables declared in path into the process
// environment. Variables that are already set are left untouched, and a
// missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading %s file: %w", path, err)
}
