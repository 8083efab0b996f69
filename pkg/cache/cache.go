// Package cache provides the small byte cache behind clipboard history.
//
// Implementations:
//   - [FileCache]: one JSON file per entry under a directory (CLI use)
//   - [MemoryCache]: process-local map (tests, --no-history sessions)
//   - [NullCache]: stores nothing
//
// [Scoped] prefixes every key so several features can share one cache
// directory without colliding.
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores opaque byte values with an optional time to live.
type Cache interface {
	// Get returns the value and true on a hit. Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}

// Lister is implemented by caches that can enumerate their live keys.
type Lister interface {
	// Keys returns the unexpired keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// keyType returns the namespace of a key ("clip" for "clip:latest"), used
// to label cache hook events.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
