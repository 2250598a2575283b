// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds every setting the server and migrate commands read.
type Config struct {
	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"`

	MongoURL                    string        `env:"MONGO_URL"`
	DBName                      string        `env:"DB_NAME"`
	MongoServerSelectionTimeout time.Duration `env:"MONGO_SERVER_SELECTION_TIMEOUT" envDefault:"5s"`

	DatabaseURL string `env:"DATABASE_URL"`

	// CORSOrigins lists the browser origins allowed to call the API; "*" allows any.
	CORSOrigins        []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	HTTPAddr           string   `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"INFO"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	SeedBlog           bool     `env:"SEED_BLOG" envDefault:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil, and validates it.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.CORSOrigins = normalizeOrigins(cfg.CORSOrigins)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing mandatory settings for the selected store driver.
func (c Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURL == "" {
			errs = append(errs, errors.New("MONGO_URL is required"))
		}
		if c.DBName == "" {
			errs = append(errs, errors.New("DB_NAME is required"))
		}
		if c.MongoServerSelectionTimeout <= 0 {
			errs = append(errs, errors.New("MONGO_SERVER_SELECTION_TIMEOUT must be positive"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.RateLimitPerMinute < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}
	return errors.Join(errs...)
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if o == "*" {
			return []string{"*"}
		}
		out = append(out, o)
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// MigrateConfig is what cmd/migrate reads. It ignores STORE_DRIVER so the
// schema can be prepared before the server is switched to Postgres.
type MigrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
}

// LoadMigrate reads an optional .env file and then the process environment.
func LoadMigrate() (MigrateConfig, error) {
	_ = godotenv.Load()
	return ParseMigrate(nil)
}

// ParseMigrate builds a MigrateConfig from environ, or from the process
// environment when environ is nil.
func ParseMigrate(environ map[string]string) (MigrateConfig, error) {
	var cfg MigrateConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return MigrateConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
