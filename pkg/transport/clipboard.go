package transport

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

// Clipboard is a place text can be written to and read back from.
type Clipboard interface {
	// Name identifies the backend in logs and hooks.
	Name() string
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}

// Backend names.
const (
	BackendSystem = "system"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// =============================================================================
// System
// =============================================================================

// System is the operating system clipboard.
type System struct{}

func (System) Name() string { return BackendSystem }

// Available reports whether a clipboard utility was found.
func (System) Available() bool { return !clipboard.Unsupported }

func (s System) Read(ctx context.Context) (string, error) {
	if err := s.check(ctx); err != nil {
		return "", err
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeClipboardUnavailable, err, "read clipboard")
	}
	return text, nil
}

func (s System) Write(ctx context.Context, text string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(errors.ErrCodeClipboardUnavailable, err, "write clipboard")
	}
	return nil
}

func (s System) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.Available() {
		return errors.New(errors.ErrCodeClipboardUnavailable, "no clipboard utility found; %s", installHint())
	}
	return nil
}

func installHint() string {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "install xclip, xsel or wl-clipboard, or use --clipboard file"
	default:
		return "use --clipboard file"
	}
}

// =============================================================================
// File
// =============================================================================

// File keeps the clipboard in a plain file.
type File struct {
	Path string
}

func (File) Name() string { return BackendFile }

// Read returns the file content. A missing file reads as empty text.
func (f File) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "read clipboard file")
	}
	return string(data), nil
}

func (f File) Write(ctx context.Context, text string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create clipboard directory")
	}
	if err := os.WriteFile(f.Path, []byte(text), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write clipboard file")
	}
	return nil
}

// =============================================================================
// Memory
// =============================================================================

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (*Memory) Name() string { return BackendMemory }

func (m *Memory) Read(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) Write(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

var (
	_ Clipboard = System{}
	_ Clipboard = File{}
	_ Clipboard = (*Memory)(nil)
)
