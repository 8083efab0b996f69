// Package cli implements the shadercopy command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/buildinfo"
	"github.com/matzehuels/shadercopy/pkg/cache"
	"github.com/matzehuels/shadercopy/pkg/config"
	"github.com/matzehuels/shadercopy/pkg/convert"
	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/host/sqlite"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/transport"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// Global flag values; empty means "use the config file".
	configPath    string
	libraryPath   string
	clipboardMode string
	clipboardFile string
	noHistory     bool

	// registry is the node registry used by every command. Tests swap in a
	// reduced one to model hosts lacking node types.
	registry *nodes.Registry
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Config:   config.Default(),
		registry: nodes.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Shadercopy copies material node graphs as text",
		Long: `Shadercopy serializes material node graphs into JSON (or YAML) documents
and rebuilds equivalent graphs from them, so a material can travel through the
clipboard, a file, or a chat message and be reconstructed elsewhere.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default "+config.Path()+")")
	flags.StringVar(&c.libraryPath, "library", "", "material library database")
	flags.StringVar(&c.clipboardMode, "clipboard", "", "clipboard backend: system or file")
	flags.StringVar(&c.clipboardFile, "clipboard-file", "", "file used by the file clipboard")
	flags.BoolVar(&c.noHistory, "no-history", false, "do not record copies in the clipboard history")

	// Register all subcommands
	root.AddCommand(c.copyCommand())
	root.AddCommand(c.pasteCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.seedCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies flag overrides. It runs
// before every command.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.libraryPath != "" {
		cfg.Library = c.libraryPath
	}
	if c.clipboardMode != "" {
		cfg.Clipboard = c.clipboardMode
	}
	if c.clipboardFile != "" {
		cfg.ClipboardFile = c.clipboardFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg

	// The config can make logging more verbose, never quieter than --verbose.
	if lvl, err := cfg.Level(); err == nil && lvl < c.Logger.GetLevel() {
		c.SetLogLevel(lvl)
	}
	registerHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("starting", "build", buildinfo.UserAgent(), "library", cfg.Library, "clipboard", cfg.Clipboard)
	return nil
}

// =============================================================================
// Service Factories
// =============================================================================

// openLibrary opens the SQLite material library.
func (c *CLI) openLibrary() (*sqlite.Store, error) {
	lib, err := sqlite.Open(c.Config.Library, c.registry)
	if err != nil {
		return nil, err
	}
	lib.Logger = c.Logger
	return lib, nil
}

// withLibrary opens the library, runs fn and closes the library.
func (c *CLI) withLibrary(fn func(lib *sqlite.Store) error) error {
	lib, err := c.openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()
	return fn(lib)
}

func (c *CLI) serializer() *convert.Serializer {
	return convert.NewSerializer(c.registry, c.Logger)
}

func (c *CLI) deserializer(repo host.Repository) *convert.Deserializer {
	return convert.NewDeserializer(repo, c.registry, c.Logger)
}

// clipboard returns the configured clipboard backend.
func (c *CLI) clipboard() transport.Clipboard {
	if c.Config.Clipboard == config.ClipboardFile {
		return transport.File{Path: c.Config.ClipboardFile}
	}
	return transport.System{}
}

// history returns the clipboard history, or a history that forgets
// everything when --no-history is set or the cache directory is unusable.
func (c *CLI) history() *transport.History {
	return transport.NewHistory(c.newCache(), c.Config.HistoryTTL.Duration)
}

func (c *CLI) newCache() cache.Cache {
	if c.noHistory {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(config.CacheDir())
	if err != nil {
		c.Logger.Warn("clipboard history disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// textOptions builds transport options from the config and a --format flag.
func (c *CLI) textOptions(format string, compact bool) (transport.Options, error) {
	if format == "" {
		format = c.Config.Format
	}
	if err := errors.ValidateFormat(format); err != nil {
		return transport.Options{}, err
	}
	return transport.Options{Format: document.Format(format), Indent: c.Config.Indent && !compact}, nil
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
