package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the content module.
type Config struct {
	// Redis configuration for the content listing cache. An empty address
	// disables caching entirely.
	RedisAddr     string `env:"REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"30s"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load content configuration from environment: " + err.Error())
	}
	if cfg.ContentCacheTTL <= 0 {
		cfg.ContentCacheTTL = 30 * time.Second
	}
	return cfg, nil
}

// CacheEnabled reports whether the Redis listing cache should be wired.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
