package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache used in front of hot catalog queries.
// Implementations must treat cache misses and backend outages as non-fatal.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}
