package transport

import (
	"bytes"
	"context"
	"strings"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/observability"
)

// Options controls how documents are rendered as text.
type Options struct {
	Format document.Format // json (default) or yaml
	Indent bool            // pretty-print JSON
}

// DefaultOptions returns indented JSON.
func DefaultOptions() Options {
	return Options{Format: document.FormatJSON, Indent: true}
}

// CopyToText renders a document as text.
func CopyToText(doc document.Document, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := document.Encode(&buf, doc, opts.Format, opts.Indent); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// PasteFromText parses text produced by [CopyToText] or written by hand.
// Text starting with "{" is parsed as JSON; anything else is tried as YAML.
// Text that is neither, or that does not describe a document, returns a
// VALIDATION error.
func PasteFromText(text string) (document.Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return document.Document{}, errors.New(errors.ErrCodeValidation, "clipboard text is empty")
	}
	if strings.HasPrefix(trimmed, "{") {
		return document.Parse([]byte(trimmed))
	}
	doc, err := document.ParseYAML([]byte(trimmed))
	if err != nil {
		return document.Document{}, errors.Wrap(errors.ErrCodeValidation, err, "text is neither a JSON nor a YAML document")
	}
	return doc, nil
}

// Copy renders doc and writes it to the clipboard. It returns the text
// written.
func Copy(ctx context.Context, cb Clipboard, doc document.Document, opts Options) (string, error) {
	text, err := CopyToText(doc, opts)
	if err != nil {
		return "", err
	}
	err = cb.Write(ctx, text)
	observability.Clipboard().OnCopy(ctx, cb.Name(), len(text), err)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Paste reads the clipboard and parses its content.
func Paste(ctx context.Context, cb Clipboard) (document.Document, string, error) {
	text, err := cb.Read(ctx)
	observability.Clipboard().OnPaste(ctx, cb.Name(), len(text), err)
	if err != nil {
		return document.Document{}, "", err
	}
	doc, err := PasteFromText(text)
	if err != nil {
		return document.Document{}, text, err
	}
	return doc, text, nil
}
