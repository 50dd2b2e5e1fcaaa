package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the service configuration, read from the environment with the
// defaults below.
type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" env-default:":3000"`
	CatalogPath     string        `env:"CATALOG_PATH" env-default:"data/components.json"`
	RedisAddr       string        `env:"REDIS_ADDR"` // empty = in-memory build store
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" env-default:"120"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
