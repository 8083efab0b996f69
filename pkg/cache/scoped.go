package cache

import (
	"context"
	"strings"
	"time"
)

// ScopedCache wraps a Cache with a key prefix, giving each feature its own
// namespace inside a shared cache.
//
// Example usage:
//
//	clips := NewScoped(fileCache, "clip:")
//	clips.Set(ctx, "latest", hash, 0) // stored as "clip:latest"
type ScopedCache struct {
	inner  Cache
	prefix string
}

// NewScoped creates a cache whose keys are prefixed with prefix. A nil
// inner cache means [NullCache].
func NewScoped(inner Cache, prefix string) *ScopedCache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Prefix returns the namespace prefix.
func (s *ScopedCache) Prefix() string { return s.prefix }

func (s *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *ScopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Keys lists keys in the scope, with the scope prefix removed. Inner caches
// that cannot enumerate keys yield nothing.
func (s *ScopedCache) Keys(ctx context.Context, prefix string) ([]string, error) {
	l, ok := s.inner.(Lister)
	if !ok {
		return nil, nil
	}
	keys, err := l.Keys(ctx, s.prefix+prefix)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, s.prefix)
	}
	return keys, nil
}

// Close closes the inner cache.
func (s *ScopedCache) Close() error { return s.inner.Close() }

var (
	_ Cache  = (*ScopedCache)(nil)
	_ Lister = (*ScopedCache)(nil)
)
