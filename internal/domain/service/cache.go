package service

import (
	"context"
	"time"
)

// Cache defines a read-through byte cache for upstream responses.
// Implementations must degrade gracefully: a backend failure is reported as
// a miss on Get and silently dropped on Set, so callers always fall back to
// the origin fetch.
type Cache interface {
	// Get returns the cached value for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
