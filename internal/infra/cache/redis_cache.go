// Package cache implements the upstream response cache on Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mihrab/config"
	"mihrab/internal/domain/service"
)

// NewRedisClient creates a Redis connection from configuration. A nil Redis
// section disables caching entirely.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis == nil {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// RedisCache is a read-through byte cache. Backend failures never propagate:
// a failed Get reads as a miss, a failed Set is logged and dropped, so
// callers always fall back to the origin fetch.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache wraps a Redis client as a service.Cache. A nil client yields
// a cache that always misses.
func NewRedisCache(client *redis.Client, logger *slog.Logger) service.Cache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// Get returns the cached value for key, or ok=false on a miss or backend error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}

	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	return value, true
}

// Set stores value under key with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}
