package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the directory service.
// Environment variables are parsed from the DIRECTORY_ prefix,
// e.g. DIRECTORY_HTTP_PORT, DIRECTORY_STORE_DRIVER.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// StoreDriver selects the storage backend: memory, sqlite or postgres.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`

	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SeedDemoData loads the demo catalog at startup.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"false"`
}

// ResolveDefaults validates the store driver and its required settings.
func (c *Config) ResolveDefaults() error {
	switch c.StoreDriver {
	case "memory":
		// nothing to derive
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = "directory.db"
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("DIRECTORY_POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	return nil
}

// New creates a Config by parsing DIRECTORY_-prefixed environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("DIRECTORY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Int("port", cfg.HTTPPort).
		Bool("seed_demo_data", cfg.SeedDemoData).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config for tests: in-memory store, no seeding.
func NewForTesting() *Config {
	return &Config{
		Environment: EnvTesting,
		HTTPPort:    8080,
		StoreDriver: "memory",
	}
}

// IsTesting returns true if the environment is set to testing.
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production.
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
