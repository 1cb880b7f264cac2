// Package cli implements the kintree command-line interface.
//
// This package provides commands for rendering family trees from the
// configured data source, serving them over HTTP, and browsing them
// interactively in the terminal. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, JSON, or DOT renders of one person's tree
//   - serve: Serve interactive tree pages over HTTP
//   - browse: Explore the tree in an interactive terminal UI
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kintreeapp/kintree/internal/config"
	"github.com/kintreeapp/kintree/pkg/buildinfo"
	"github.com/kintreeapp/kintree/pkg/cache"
	"github.com/kintreeapp/kintree/pkg/pipeline"
	"github.com/kintreeapp/kintree/pkg/provider"
	"github.com/kintreeapp/kintree/pkg/provider/file"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
)

// appName is the application name used for directories and display.
const appName = "kintree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag value; empty means kintree.toml
	// in the working directory, falling back to defaults.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Kintree renders interactive family trees",
		Long:         `Kintree is a CLI tool for rendering family trees as a three-row frame (parents above, siblings and spouses beside, children below) centered on one person, with SVG, JSON, and Graphviz output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to kintree.toml (default: ./kintree.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration & Runner Factories
// =============================================================================

// loadConfig loads the configured or default kintree.toml.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// openProvider builds the data source for a command run. A --data file
// overrides the configured provider; with neither, demo data is used.
func (c *CLI) openProvider(ctx context.Context, cfg config.Config, dataFile string) (provider.Provider, func(context.Context) error, error) {
	if dataFile != "" {
		store, err := file.Load(dataFile)
		if err != nil {
			return nil, nil, err
		}
		return store, func(context.Context) error { return nil }, nil
	}
	return cfg.OpenProvider(ctx)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, prov provider.Provider, noCache bool) (*pipeline.Runner, error) {
	artifactCache, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(prov, artifactCache, c.Logger), nil
}

func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.Kind != "" && cfg.Cache.Kind != config.CacheNone {
		return cfg.OpenCache(ctx)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// demoStore builds the seeded in-memory data source and returns the focal
// person's id, for commands run without any configured data.
func demoStore() (*memory.Store, string) {
	store := memory.New()
	focal := memory.SeedDemo(store)
	return store, focal.ID
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/kintree/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
