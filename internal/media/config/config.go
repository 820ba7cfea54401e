package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config contains the configuration for the media module
type Config struct {
	// UploadDir is the local directory uploaded images are stored in.
	// It is created on demand.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`

	// PublicBaseURL prefixes the returned image URLs, e.g.
	// "https://studio.example.com". Empty yields relative URLs.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:""`

	// MaxUploadBytes caps a single upload.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`
}

// BodyLimit returns the HTTP body limit that lets a max-size upload through
// the transport layer. Fiber's default 4 MiB limit would otherwise reject
// uploads before the size check runs; the extra MiB covers multipart framing.
func (c *Config) BodyLimit() int {
	return int(c.MaxUploadBytes) + 1<<20
}

// LoadConfig loads media configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse media config: %w", err)
	}
	return cfg, nil
}
