// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about conversions, clipboard transfers, and history cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConvertHooks(&myConvertHooks{})
//	    observability.SetClipboardHooks(&myClipboardHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Convert().OnNodeSkipped(ctx, "Voronoi", "ShaderNodeTexVoronoi", reason)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Convert Hooks
// =============================================================================

// ConvertHooks receives events from the serializer and deserializer.
type ConvertHooks interface {
	// OnSerialize records a completed (or failed) serialize call.
	OnSerialize(ctx context.Context, material string, nodeCount, linkCount int, duration time.Duration, err error)

	// OnDeserialize records a completed (or failed) deserialize call.
	OnDeserialize(ctx context.Context, material string, nodeCount, linkCount int, duration time.Duration, err error)

	// OnNodeSkipped records a node left out because its type is unsupported.
	OnNodeSkipped(ctx context.Context, node, nodeType, reason string)

	// OnLinkDropped records a link that could not be reproduced.
	OnLinkDropped(ctx context.Context, link, reason string)
}

// =============================================================================
// Clipboard Hooks
// =============================================================================

// ClipboardHooks receives events from clipboard transfers.
type ClipboardHooks interface {
	// OnCopy records a write of size bytes to a clipboard backend.
	OnCopy(ctx context.Context, backend string, size int, err error)

	// OnPaste records a read of size bytes from a clipboard backend.
	OnPaste(ctx context.Context, backend string, size int, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnSerialize(context.Context, string, int, int, time.Duration, error)   {}
func (NoopConvertHooks) OnDeserialize(context.Context, string, int, int, time.Duration, error) {}
func (NoopConvertHooks) OnNodeSkipped(context.Context, string, string, string)                 {}
func (NoopConvertHooks) OnLinkDropped(context.Context, string, string)                         {}

// NoopClipboardHooks is a no-op implementation of ClipboardHooks.
type NoopClipboardHooks struct{}

func (NoopClipboardHooks) OnCopy(context.Context, string, int, error)  {}
func (NoopClipboardHooks) OnPaste(context.Context, string, int, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	convertHooks   ConvertHooks   = NoopConvertHooks{}
	clipboardHooks ClipboardHooks = NoopClipboardHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetConvertHooks registers custom conversion hooks.
// This should be called once at application startup before any conversion.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// SetClipboardHooks registers custom clipboard hooks.
func SetClipboardHooks(h ClipboardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		clipboardHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Clipboard returns the registered clipboard hooks.
func Clipboard() ClipboardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return clipboardHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	convertHooks = NoopConvertHooks{}
	clipboardHooks = NoopClipboardHooks{}
	cacheHooks = NoopCacheHooks{}
}
