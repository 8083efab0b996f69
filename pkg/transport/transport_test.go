package transport

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/shadercopy/pkg/cache"
	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/observability"
)

func sampleDoc() document.Document {
	doc := document.New("M", true)
	doc.Nodes = []document.NodeRecord{
		{Name: "Output", Type: "ShaderNodeOutputMaterial", Inputs: map[string]any{}, Properties: map[string]any{}},
		{
			Name:       "BSDF",
			Type:       "ShaderNodeBsdfPrincipled",
			Location:   document.Location{-200, 0},
			Inputs:     map[string]any{"Base Color": []float64{0.8, 0.2, 0.2, 1}},
			Properties: map[string]any{"distribution": "GGX"},
		},
	}
	doc.Links = []document.LinkRecord{
		{FromNode: "BSDF", FromSocket: document.Ref("BSDF"), ToNode: "Output", ToSocket: document.Ref("Surface")},
	}
	return doc
}

func TestCopyPasteText(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		prefix string
	}{
		{"indented json", DefaultOptions(), "{\n  \"name\""},
		{"compact json", Options{Format: document.FormatJSON}, `{"name":"M"`},
		{"yaml", Options{Format: document.FormatYAML}, "name: M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := CopyToText(sampleDoc(), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(text, tt.prefix) {
				t.Errorf("text starts with %q, want %q", text[:min(len(text), 20)], tt.prefix)
			}
			if strings.HasSuffix(text, "\n") {
				t.Error("text should not end with a newline")
			}

			doc, err := PasteFromText(text)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(doc, sampleDoc()) {
				t.Errorf("paste(copy(doc)) = %+v", doc)
			}
		})
	}
}

func TestPasteFromTextMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", "   "},
		{"plain words", "not json"},
		{"empty object", "{}"},
		{"broken json", `{"name": "M",`},
		{"yaml list", "- a\n- b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PasteFromText(tt.text)
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Errorf("PasteFromText(%q) = %v, want VALIDATION", tt.text, err)
			}
		})
	}
}

type recordingHooks struct {
	observability.NoopClipboardHooks
	copies, pastes []string
}

func (h *recordingHooks) OnCopy(_ context.Context, backend string, _ int, _ error) {
	h.copies = append(h.copies, backend)
}

func (h *recordingHooks) OnPaste(_ context.Context, backend string, _ int, _ error) {
	h.pastes = append(h.pastes, backend)
}

func TestCopyPasteClipboards(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetClipboardHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	boards := []Clipboard{
		&Memory{},
		File{Path: filepath.Join(t.TempDir(), "sub", "clip.json")},
	}
	for _, cb := range boards {
		t.Run(cb.Name(), func(t *testing.T) {
			text, err := Copy(ctx, cb, sampleDoc(), DefaultOptions())
			if err != nil {
				t.Fatal(err)
			}
			doc, pasted, err := Paste(ctx, cb)
			if err != nil {
				t.Fatal(err)
			}
			if pasted != text {
				t.Error("pasted text differs from copied text")
			}
			if doc.Name != "M" || len(doc.Nodes) != 2 {
				t.Errorf("doc = %+v", doc)
			}
		})
	}
	if len(hooks.copies) != 2 || len(hooks.pastes) != 2 || hooks.copies[1] != BackendFile {
		t.Errorf("hooks copies=%v pastes=%v", hooks.copies, hooks.pastes)
	}
}

func TestFileClipboardMissing(t *testing.T) {
	cb := File{Path: filepath.Join(t.TempDir(), "none.json")}
	text, err := cb.Read(context.Background())
	if err != nil || text != "" {
		t.Errorf("Read(missing) = %q, %v", text, err)
	}
	if _, _, err := Paste(context.Background(), cb); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("Paste(empty) = %v, want VALIDATION", err)
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	h := NewHistory(cache.NewMemoryCache(), 0)
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	if _, err := h.Latest(ctx); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Latest on empty history = %v, want NOT_FOUND", err)
	}

	first, err := h.Record(ctx, "Wood", "json", `{"name":"Wood"}`)
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Record(ctx, "Metal", "json", `{"name":"Metal"}`)
	if err != nil {
		t.Fatal(err)
	}
	if first.Hash != cache.Hash([]byte(`{"name":"Wood"}`)) {
		t.Errorf("hash = %s", first.Hash)
	}

	latest, err := h.Latest(ctx)
	if err != nil || latest.Hash != second.Hash || latest.Material != "Metal" {
		t.Errorf("Latest = %+v, %v", latest, err)
	}

	got, err := h.Get(ctx, first.Short())
	if err != nil || got.Text != first.Text {
		t.Errorf("Get(short) = %+v, %v", got, err)
	}
	if _, err := h.Get(ctx, "zzzz"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get(unknown) = %v", err)
	}

	list, err := h.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Material != "Metal" || list[1].Material != "Wood" {
		t.Errorf("List = %+v, want newest first", list)
	}

	n, err := h.Clear(ctx)
	if err != nil || n != 2 {
		t.Errorf("Clear = %d, %v", n, err)
	}
	if list, _ := h.List(ctx); len(list) != 0 {
		t.Errorf("List after Clear = %v", list)
	}
	if _, err := h.Latest(ctx); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Latest after Clear = %v", err)
	}
}

func TestHistoryOnFileCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	h := NewHistory(fc, time.Hour)
	e, err := h.Record(ctx, "Wood", "yaml", "name: Wood")
	if err != nil {
		t.Fatal(err)
	}

	// A second history on the same directory sees the entry.
	again := NewHistory(fc, time.Hour)
	latest, err := again.Latest(ctx)
	if err != nil || latest.Hash != e.Hash || latest.Format != "yaml" {
		t.Errorf("Latest = %+v, %v", latest, err)
	}
}
