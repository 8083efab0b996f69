package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadercopy/pkg/observability"
)

// logHooks forwards observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetConvertHooks(h)
	observability.SetClipboardHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnSerialize(_ context.Context, material string, nodes, links int, d time.Duration, err error) {
	h.done("serialize", material, nodes, links, d, err)
}

func (h logHooks) OnDeserialize(_ context.Context, material string, nodes, links int, d time.Duration, err error) {
	h.done("deserialize", material, nodes, links, d, err)
}

func (h logHooks) done(op, material string, nodes, links int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug(op+" failed", "material", material, "took", d.Round(time.Microsecond), "err", err)
		return
	}
	h.logger.Debug(op, "material", material, "nodes", nodes, "links", links, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnNodeSkipped(_ context.Context, node, nodeType, reason string) {
	h.logger.Debug("node skipped", "node", node, "type", nodeType, "reason", reason)
}

func (h logHooks) OnLinkDropped(_ context.Context, link, reason string) {
	h.logger.Debug("link dropped", "link", link, "reason", reason)
}

func (h logHooks) OnCopy(_ context.Context, backend string, size int, err error) {
	h.logger.Debug("clipboard write", "backend", backend, "bytes", size, "err", err)
}

func (h logHooks) OnPaste(_ context.Context, backend string, size int, err error) {
	h.logger.Debug("clipboard read", "backend", backend, "bytes", size, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("history hit", "key", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("history miss", "key", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("history write", "key", keyType, "bytes", size)
}
