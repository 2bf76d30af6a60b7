// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config reads Canon's settings from the environment.

Both binaries (the API server and canonctl) call [Load], so one env file
configures a whole deployment. Parsing is done by caarlos0/env; the rules
that span several variables are checked afterwards in [Config.validate].
*/
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/canon/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Canon API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Store (Redis) for sermon export tokens
	RedisURL  string        `env:"REDIS_URL,required,notEmpty"`
	ExportTTL time.Duration `env:"EXPORT_TTL" envDefault:"15m"`

	// Object Storage (S3-compatible). Archiving is disabled when S3Bucket is empty.
	S3Bucket          string `env:"S3_BUCKET"`
	S3Region          string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`

	// MaxUploadBytes bounds a single lexicon upload.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"33554432"`
}

// # Configuration Loading

// Environments accepted in ENVIRONMENT.
var environments = []string{"development", "staging", "production"}

// Load parses the environment into a [Config] and checks it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = constants.DefaultMaxUploadBytes
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var problems []error

	if !slices.Contains(environments, c.Environment) {
		problems = append(problems, fmt.Errorf("ENVIRONMENT %q is not one of %v", c.Environment, environments))
	}
	if c.ExportTTL <= 0 {
		problems = append(problems, errors.New("EXPORT_TTL must be positive"))
	}
	if (c.S3AccessKeyID == "") != (c.S3SecretAccessKey == "") {
		problems = append(problems, errors.New("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set together"))
	}

	return errors.Join(problems...)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ArchiveEnabled reports whether uploads and exports are copied to object storage.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != ""
}
