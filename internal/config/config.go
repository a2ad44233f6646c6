// Package config holds the seeder's environment-driven configuration.
package config

import (
	"fmt"
	"time"

	"github.com/utafrali/priceradar/pkg/database"

	pkgconfig "github.com/utafrali/priceradar/pkg/config"
	apperrors "github.com/utafrali/priceradar/pkg/errors"
)

// Config holds all configuration for the seed command.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"priceradar"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"priceradar_secret"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"priceradar"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// DatabaseURL, when set, overrides the discrete Postgres fields.
	DatabaseURL string `env:"DATABASE_URL"`

	// Seeding
	Seed          int64 `env:"SEED" envDefault:"0"`
	BatchSize     int   `env:"SEED_BATCH_SIZE" envDefault:"1000"`
	HistoryMonths int   `env:"HISTORY_MONTHS" envDefault:"6"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load seed config: %w", err)
	}
	if cfg.PostgresPort < 1 || cfg.PostgresPort > 65535 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid postgres port: %d", cfg.PostgresPort))
	}
	if cfg.BatchSize < 1 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid batch size: %d", cfg.BatchSize))
	}
	if cfg.HistoryMonths < 1 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid history months: %d", cfg.HistoryMonths))
	}
	return cfg, nil
}

// EffectiveSeed returns the configured seed, or one derived from the current
// time when SEED is unset. The caller logs the value so any run can be
// reproduced.
func (c *Config) EffectiveSeed() uint64 {
	if c.Seed != 0 {
		return uint64(c.Seed)
	}
	return uint64(time.Now().UnixNano())
}

// PostgresConfig maps the environment values onto the pool configuration.
func (c *Config) PostgresConfig() database.PostgresConfig {
	pg := database.DefaultPostgresConfig()
	pg.Host = c.PostgresHost
	pg.Port = c.PostgresPort
	pg.User = c.PostgresUser
	pg.Password = c.PostgresPass
	pg.DBName = c.PostgresDB
	pg.SSLMode = c.PostgresSSL
	pg.URL = c.DatabaseURL
	return pg
}
