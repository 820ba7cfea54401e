package persistence

import (
	"context"
	"encoding/json"
	"time"

	"yogic-backend/internal/content/domain/model"
	"yogic-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// listingKey is the cache key for the aggregate content listing.
const listingKey = "yogic:content:listing"

// RedisContentCache caches the aggregate content listing in Redis. The
// cache is read-through with a short TTL and invalidated on every content
// mutation, so a stale read can only survive within the TTL window.
type RedisContentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisContentCache creates a new Redis-backed content listing cache
func NewRedisContentCache(client *redis.Client, ttl time.Duration, log logger.Logger) *RedisContentCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisContentCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// GetListing returns the cached listing, or nil on a miss
func (r *RedisContentCache) GetListing(ctx context.Context) (*model.ContentListing, error) {
	payload, err := r.client.Get(ctx, listingKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read content listing from Redis", zap.Error(err))
		return nil, err
	}

	var listing model.ContentListing
	if err := json.Unmarshal(payload, &listing); err != nil {
		r.logger.Warn("Failed to decode cached content listing, dropping it", zap.Error(err))
		_ = r.client.Del(ctx, listingKey).Err()
		return nil, nil
	}

	r.logger.Debug("Content listing served from cache",
		zap.Int("blogs", len(listing.Blogs)),
		zap.Int("asanas", len(listing.Asanas)))
	return &listing, nil
}

// SetListing stores the listing with the configured TTL
func (r *RedisContentCache) SetListing(ctx context.Context, listing *model.ContentListing) error {
	payload, err := json.Marshal(listing)
	if err != nil {
		r.logger.Error("Failed to serialize content listing", zap.Error(err))
		return err
	}

	if err := r.client.Set(ctx, listingKey, payload, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to store content listing in Redis", zap.Error(err))
		return err
	}

	r.logger.Debug("Content listing cached", zap.Duration("ttl", r.ttl))
	return nil
}

// Invalidate drops the cached listing
func (r *RedisContentCache) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, listingKey).Err(); err != nil {
		r.logger.Error("Failed to invalidate content listing cache", zap.Error(err))
		return err
	}
	return nil
}
