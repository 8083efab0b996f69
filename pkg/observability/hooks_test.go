package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Convert hooks
	c := NoopConvertHooks{}
	c.OnSerialize(ctx, "Wood", 4, 3, time.Millisecond, nil)
	c.OnDeserialize(ctx, "Wood.001", 4, 3, time.Millisecond, errors.New("boom"))
	c.OnNodeSkipped(ctx, "Voronoi", "ShaderNodeTexVoronoi", "unsupported")
	c.OnLinkDropped(ctx, "Voronoi.Color -> Mix.Color1", "endpoint skipped")

	// Clipboard hooks
	cb := NoopClipboardHooks{}
	cb.OnCopy(ctx, "system", 512, nil)
	cb.OnPaste(ctx, "file", 512, nil)

	// Cache hooks
	ch := NoopCacheHooks{}
	ch.OnCacheHit(ctx, "clip")
	ch.OnCacheMiss(ctx, "clip")
	ch.OnCacheSet(ctx, "clip", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Convert() should return NoopConvertHooks by default")
	}
	if _, ok := Clipboard().(NoopClipboardHooks); !ok {
		t.Error("Clipboard() should return NoopClipboardHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customConvert := &testConvertHooks{}
	SetConvertHooks(customConvert)
	if Convert() != customConvert {
		t.Error("SetConvertHooks should set custom hooks")
	}

	customClipboard := &testClipboardHooks{}
	SetClipboardHooks(customClipboard)
	if Clipboard() != customClipboard {
		t.Error("SetClipboardHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Reset() should restore NoopConvertHooks")
	}
	if _, ok := Clipboard().(NoopClipboardHooks); !ok {
		t.Error("Reset() should restore NoopClipboardHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConvertHooks{}
	SetConvertHooks(custom)
	SetConvertHooks(nil)
	if Convert() != custom {
		t.Error("SetConvertHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testConvertHooks struct{ NoopConvertHooks }
type testClipboardHooks struct{ NoopClipboardHooks }
type testCacheHooks struct{ NoopCacheHooks }
