// Package kvstore abstracts the shared TTL key-value cache used for
// domain-reputation results. The Redis-backed store is the authoritative
// implementation; the in-process memory store exists as a degraded-mode
// fallback when Redis is unreachable.
package kvstore

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiry.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under key for the given TTL. A non-positive TTL
	// means the entry does not expire.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Exists reports whether the key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Healthy reports whether the backing store is reachable.
	Healthy(ctx context.Context) error
}
