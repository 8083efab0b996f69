package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Library != filepath.Join("/data", AppName, "library.db") {
		t.Errorf("Library = %q", cfg.Library)
	}
	if cfg.HistoryTTL.Duration != 168*time.Hour {
		t.Errorf("HistoryTTL = %v", cfg.HistoryTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
library = "/tmp/lib.db"
clipboard = "file"
clipboard_file = "/tmp/clip.txt"
format = "yaml"
indent = false
history_ttl = "2h30m"
log_level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Library:       "/tmp/lib.db",
		Clipboard:     ClipboardFile,
		ClipboardFile: "/tmp/clip.txt",
		Format:        FormatYAML,
		Indent:        false,
		HistoryTTL:    Duration{150 * time.Minute},
		LogLevel:      "debug",
	}
	if cfg != want {
		t.Errorf("cfg = %+v\nwant  %+v", cfg, want)
	}
	if lvl, _ := cfg.Level(); lvl != log.DebugLevel {
		t.Errorf("Level = %v", lvl)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `format = "yaml"`))
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Format != FormatYAML || cfg.Clipboard != def.Clipboard || cfg.Indent != def.Indent {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg, err := Load(writeConfig(t, `library = "~/mats.db"`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Library != filepath.Join(home, "mats.db") {
		t.Errorf("Library = %q", cfg.Library)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", `library = `, errors.ErrCodeInvalidInput},
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidInput},
		{"bad clipboard", `clipboard = "x11"`, errors.ErrCodeInvalidInput},
		{"bad format", `format = "xml"`, errors.ErrCodeInvalidFormat},
		{"bad duration", `history_ttl = "soon"`, errors.ErrCodeInvalidInput},
		{"negative ttl", `history_ttl = "-1h"`, errors.ErrCodeInvalidInput},
		{"bad level", `log_level = "loud"`, errors.ErrCodeInvalidInput},
		{"file clipboard without path", "clipboard = \"file\"\nclipboard_file = \"\"", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Format = FormatYAML
	cfg.HistoryTTL = Duration{time.Hour}

	if err := Write(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("Load(Write(cfg)) = %+v, want %+v", got, cfg)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_CACHE_HOME", "/cache")
	if got := Path(); got != filepath.Join("/cfg", AppName, "config.toml") {
		t.Errorf("Path() = %q", got)
	}
	if got := CacheDir(); got != filepath.Join("/cache", AppName) {
		t.Errorf("CacheDir() = %q", got)
	}
}
