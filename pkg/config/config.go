// Package config loads shadercopy's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/shadercopy/config.toml (falling back to
// ~/.config/shadercopy/config.toml). A missing file is not an error: every
// key has a default, and command-line flags override whatever the file says.
//
//	library        = "~/.local/share/shadercopy/library.db"
//	clipboard      = "system"   # or "file"
//	clipboard_file = "~/.local/share/shadercopy/clipboard.txt"
//	format         = "json"     # or "yaml"
//	indent         = true
//	history_ttl    = "168h"
//	log_level      = "info"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/shadercopy/pkg/errors"
)

// AppName names the configuration, data and cache directories.
const AppName = "shadercopy"

// Clipboard backends.
const (
	ClipboardSystem = "system"
	ClipboardFile   = "file"
)

// Document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the parsed configuration file.
type Config struct {
	Library       string   `toml:"library"`        // SQLite material library
	Clipboard     string   `toml:"clipboard"`      // system | file
	ClipboardFile string   `toml:"clipboard_file"` // used when clipboard = "file"
	Format        string   `toml:"format"`         // json | yaml
	Indent        bool     `toml:"indent"`
	HistoryTTL    Duration `toml:"history_ttl"`
	LogLevel      string   `toml:"log_level"`
}

// Duration is a time.Duration written as a Go duration string ("168h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	data := DataDir()
	return Config{
		Library:       filepath.Join(data, "library.db"),
		Clipboard:     ClipboardSystem,
		ClipboardFile: filepath.Join(data, "clipboard.txt"),
		Format:        FormatJSON,
		Indent:        true,
		HistoryTTL:    Duration{7 * 24 * time.Hour},
		LogLevel:      "info",
	}
}

// Load reads the configuration at path, or at [Path] when path is empty.
// Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Library = expandHome(cfg.Library)
	cfg.ClipboardFile = expandHome(cfg.ClipboardFile)
	return cfg, cfg.Validate()
}

// Validate rejects unknown enum values and unusable settings.
func (c Config) Validate() error {
	if c.Library == "" {
		return errors.New(errors.ErrCodeInvalidInput, "library path must not be empty")
	}
	if !slices.Contains([]string{ClipboardSystem, ClipboardFile}, c.Clipboard) {
		return errors.New(errors.ErrCodeInvalidInput, "clipboard must be %q or %q, got %q", ClipboardSystem, ClipboardFile, c.Clipboard)
	}
	if c.Clipboard == ClipboardFile && c.ClipboardFile == "" {
		return errors.New(errors.ErrCodeInvalidInput, "clipboard_file is required when clipboard is %q", ClipboardFile)
	}
	if err := errors.ValidateFormat(c.Format); err != nil {
		return err
	}
	if c.HistoryTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "history_ttl must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidInput, err, "log_level")
	}
	return lvl, nil
}

// Write saves the configuration as TOML, creating parent directories.
func Write(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// =============================================================================
// Paths
// =============================================================================

// Path returns the default configuration file location.
func Path() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "config.toml")
}

// DataDir returns the directory for the material library and file clipboard.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// CacheDir returns the directory for the clipboard history cache.
func CacheDir() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env, fallback string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName)
	}
	return filepath.Join(home, fallback, AppName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
