package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Authentication
	JWTSecret     string        `env:"JWT_SECRET"     envDefault:"koperasi-dev-secret"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	// Demo login password shared by seeded accounts. All state is in-memory,
	// so there is no real credential store to check against.
	DemoPassword string `env:"DEMO_PASSWORD" envDefault:"koperasi123"`

	// Seed the ledger and user list with demo rows on startup
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}

// Load loads configuration from a .env file (when present) and environment
// variables. Environment variables win.
func Load() (*Config, error) {
	// Missing .env is fine; the defaults cover local runs.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
