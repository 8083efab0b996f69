package transport

import (
	"context"
	"slices"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/shadercopy/pkg/cache"
	"github.com/matzehuels/shadercopy/pkg/errors"
)

// HistoryPrefix namespaces clipboard history keys in a shared cache.
const HistoryPrefix = "clip:"

// DefaultHistoryTTL is how long copied documents are remembered.
const DefaultHistoryTTL = 7 * 24 * time.Hour

const latestKey = "latest"

// Entry is one remembered copy.
type Entry struct {
	Hash     string    `json:"hash"`
	Material string    `json:"material"`
	Format   string    `json:"format"`
	Text     string    `json:"text"`
	CopiedAt time.Time `json:"copied_at"`
}

// Short returns the abbreviated hash shown to users.
func (e Entry) Short() string {
	if len(e.Hash) > 12 {
		return e.Hash[:12]
	}
	return e.Hash
}

// History records copied documents in a cache under "clip:<sha256>" and
// tracks the most recent one under "clip:latest".
type History struct {
	store *cache.ScopedCache
	ttl   time.Duration
	now   func() time.Time
}

// NewHistory creates a history on c. A non-positive ttl means
// [DefaultHistoryTTL].
func NewHistory(c cache.Cache, ttl time.Duration) *History {
	if ttl <= 0 {
		ttl = DefaultHistoryTTL
	}
	return &History{store: cache.NewScoped(c, HistoryPrefix), ttl: ttl, now: time.Now}
}

// Record remembers a copied text and makes it the latest entry.
func (h *History) Record(ctx context.Context, material string, format string, text string) (Entry, error) {
	e := Entry{
		Hash:     cache.Hash([]byte(text)),
		Material: material,
		Format:   format,
		Text:     text,
		CopiedAt: h.now().UTC(),
	}
	data, err := json.Marshal(e)
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeInternal, err, "encode history entry")
	}
	if err := h.store.Set(ctx, e.Hash, data, h.ttl); err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeStorage, err, "store history entry")
	}
	if err := h.store.Set(ctx, latestKey, []byte(e.Hash), h.ttl); err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeStorage, err, "store latest history entry")
	}
	return e, nil
}

// Latest returns the most recent entry, or NOT_FOUND when the history is
// empty.
func (h *History) Latest(ctx context.Context) (Entry, error) {
	hash, ok, err := h.store.Get(ctx, latestKey)
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeStorage, err, "read history")
	}
	if !ok {
		return Entry{}, errors.New(errors.ErrCodeNotFound, "clipboard history is empty")
	}
	return h.Get(ctx, string(hash))
}

// Get returns the entry whose hash starts with prefix. An unknown or
// ambiguous prefix returns NOT_FOUND.
func (h *History) Get(ctx context.Context, prefix string) (Entry, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return Entry{}, errors.New(errors.ErrCodeNotFound, "empty history hash")
	}
	hash := prefix
	if len(prefix) < 64 {
		keys, err := h.hashes(ctx)
		if err != nil {
			return Entry{}, err
		}
		var matches []string
		for _, k := range keys {
			if strings.HasPrefix(k, prefix) {
				matches = append(matches, k)
			}
		}
		switch len(matches) {
		case 0:
			return Entry{}, errors.New(errors.ErrCodeNotFound, "no history entry %s", prefix)
		case 1:
			hash = matches[0]
		default:
			return Entry{}, errors.New(errors.ErrCodeNotFound, "history hash %s is ambiguous (%d entries)", prefix, len(matches))
		}
	}

	data, ok, err := h.store.Get(ctx, hash)
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeStorage, err, "read history entry")
	}
	if !ok {
		return Entry{}, errors.New(errors.ErrCodeNotFound, "no history entry %s", prefix)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeStorage, err, "decode history entry %s", prefix)
	}
	return e, nil
}

// List returns all live entries, newest first.
func (h *History) List(ctx context.Context) ([]Entry, error) {
	keys, err := h.hashes(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, err := h.Get(ctx, k)
		if errors.Is(err, errors.ErrCodeNotFound) {
			continue // expired between listing and reading
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return b.CopiedAt.Compare(a.CopiedAt)
	})
	return entries, nil
}

// Clear removes every entry. It returns the number of entries removed.
func (h *History) Clear(ctx context.Context) (int, error) {
	keys, err := h.hashes(ctx)
	if err != nil {
		return 0, err
	}
	for _, k := range keys {
		if err := h.store.Delete(ctx, k); err != nil {
			return 0, errors.Wrap(errors.ErrCodeStorage, err, "delete history entry")
		}
	}
	if err := h.store.Delete(ctx, latestKey); err != nil {
		return 0, errors.Wrap(errors.ErrCodeStorage, err, "delete latest history entry")
	}
	return len(keys), nil
}

// hashes lists the entry keys, excluding the latest pointer.
func (h *History) hashes(ctx context.Context) ([]string, error) {
	keys, err := h.store.Keys(ctx, "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list history")
	}
	return slices.DeleteFunc(keys, func(k string) bool { return k == latestKey }), nil
}
