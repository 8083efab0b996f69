package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

// Format is a text encoding of a document.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension; anything other
// than .yaml or .yml is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// =============================================================================
// Encoding API
// =============================================================================

// Marshal encodes a document as JSON. Map keys are sorted.
func Marshal(doc Document, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, doc, indent); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML encodes a document as YAML.
func MarshalYAML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeYAML(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes a document in the given format. Indentation applies to JSON
// only.
func Encode(w io.Writer, doc Document, format Format, indent bool) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, doc, indent)
	case FormatYAML:
		return writeYAML(w, doc)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}

// Decode parses a document in the given format.
func Decode(data []byte, format Format) (Document, error) {
	switch format {
	case FormatJSON, "":
		return Parse(data)
	case FormatYAML:
		return ParseYAML(data)
	default:
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}

// ReadFile reads a document, choosing the codec from the file extension.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, FormatFromPath(path))
}

// WriteFile writes a document, choosing the codec from the file extension.
// The file is created with 0644 permissions.
func WriteFile(path string, doc Document, indent bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, doc, FormatFromPath(path), indent)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeJSON(w io.Writer, doc Document, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(withEmptySlices(doc)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(withEmptySlices(doc)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// withEmptySlices keeps "nodes", "links", "inputs" and "properties" encoded
// as empty collections instead of null.
func withEmptySlices(doc Document) Document {
	if doc.Nodes == nil {
		doc.Nodes = []NodeRecord{}
	}
	if doc.Links == nil {
		doc.Links = []LinkRecord{}
	}
	nodes := make([]NodeRecord, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.Inputs == nil {
			n.Inputs = map[string]any{}
		}
		if n.Properties == nil {
			n.Properties = map[string]any{}
		}
		nodes[i] = n
	}
	doc.Nodes = nodes
	return doc
}
