package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultAdminPassword is the documented bootstrap credential. Keeping it as
// a named constant lets startup warn loudly when it is still in use.
const DefaultAdminPassword = "admin123"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DatabaseDriver string `env:"DATABASE_DRIVER, default=sqlite"`
	DatabaseURL    string `env:"DATABASE_URL,    default=catering.db"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`

	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`
}

// Load reads .env when present, then populates the config from the
// environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	return &cfg, nil
}
