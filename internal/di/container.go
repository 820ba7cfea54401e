package di

import (
	"context"
	"fmt"
	"sync"

	"yogic-backend/internal/auth"
	authconfig "yogic-backend/internal/auth/config"
	"yogic-backend/internal/content"
	contentconfig "yogic-backend/internal/content/config"
	"yogic-backend/internal/media"
	mediaconfig "yogic-backend/internal/media/config"
	"yogic-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the auth, content and media modules together with
// proper lifecycle management.
type Container struct {
	mu sync.RWMutex

	// Module instances
	AuthModule    *auth.AuthModule
	ContentModule *content.ContentModule
	MediaModule   *media.MediaModule

	// Connections
	MongoDB     *mongo.Database
	RedisClient *redis.Client

	// Configuration
	AuthConfig *authconfig.Config

	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer(log logger.Logger) *Container {
	return &Container{Logger: log}
}

// InitializeAuth initializes the admin authentication module.
func (c *Container) InitializeAuth(mongoDB *mongo.Database, cfg *authconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoDB = mongoDB
	c.AuthConfig = cfg

	authModule, err := auth.NewAuthModule(mongoDB, cfg)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeContent initializes the content module. The Redis client may be
// nil, which disables the listing cache. Requires InitializeAuth to have run
// first since content mutations sit behind the auth middleware.
func (c *Container) InitializeContent(redisClient *redis.Client, cfg *contentconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before content module")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before content module")
	}

	c.RedisClient = redisClient

	contentModule, err := content.NewContentModule(c.MongoDB, redisClient, cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create content module: %w", err)
	}

	c.ContentModule = contentModule
	return nil
}

// InitializeMedia initializes the image upload module.
func (c *Container) InitializeMedia(cfg *mediaconfig.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before media module")
	}

	mediaModule, err := media.NewMediaModule(cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create media module: %w", err)
	}

	c.MediaModule = mediaModule
	return nil
}

// GetAuthModule returns the auth module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetContentModule returns the content module instance
func (c *Container) GetContentModule() *content.ContentModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ContentModule
}

// GetMediaModule returns the media module instance
func (c *Container) GetMediaModule() *media.MediaModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.MediaModule
}

// HealthCheck pings the backing stores.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoDB != nil {
		if err := c.MongoDB.Client().Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis health check failed: %w", err)
		}
	}

	return nil
}

// Close gracefully shuts down the container's connections. The Mongo client
// is owned by the caller and closed there.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MediaModule = nil
	c.ContentModule = nil
	c.AuthModule = nil

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
		c.RedisClient = nil
	}

	return nil
}
