// Package config loads the application configuration from environment
// variables. A .env file is honored for local development.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogFormat string `env:"LOG_FORMAT" envDefault:""`

	// Database
	DBFile string `env:"DB_FILE" envDefault:"data/expense-tracker.db"`

	// Authentication
	JWTSecret   string        `env:"JWT_SECRET,required"`
	JWTLifetime time.Duration `env:"JWT_LIFETIME" envDefault:"24h"`

	// Space separated list of allowed CORS origins. CORS is disabled when
	// empty.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`

	// Event publishing. The log publisher is used when unset.
	AMQPURL string `env:"AMQP_URL"`

	EnablePprof  bool `env:"ENABLE_PPROF" envDefault:"false"`
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	// Missing .env files are fine, the environment is authoritative
	_ = godotenv.Load()

	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
