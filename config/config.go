package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every externally supplied setting. Values come from the
// environment, optionally topped up from a local .env file.
type Config struct {
	Port        int           `envconfig:"PORT" default:"4000"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
}

// Load reads configuration from the environment. A missing .env file is
// not an error; a malformed value is.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
