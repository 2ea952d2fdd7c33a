package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/uspp-raketa/vertexsim/pkg/buildinfo"
	"github.com/uspp-raketa/vertexsim/pkg/cache"
	"github.com/uspp-raketa/vertexsim/pkg/compare"
	"github.com/uspp-raketa/vertexsim/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "vertexsim"

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose    bool
	configPath string
	noCache    bool
}

// Execute runs the vertexsim CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The root command wires a logger into the context based on --verbose
// (debug level) and registers every subcommand. Configuration is read
// lazily by the commands that need it via loadConfig.
func Execute(ctx context.Context) error {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Vertexsim scores the structural similarity of two directed graphs",
		Long: `Vertexsim compares two directed graphs node by node: it runs a coupled
iterative scoring scheme over their adjacency matrices and reports, for
every node of the first graph, how similar it is to every node of the
second, highlighting the best match.

Graphs come from JSON or edge-list files, the built-in example catalog,
the interactive editor, the OPTED dictionary word graph, or a Neo4j
database.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/vertexsim/config.toml)")
	root.PersistentFlags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	root.AddCommand(newCompareCmd(opts))
	root.AddCommand(newEditCmd(opts))
	root.AddCommand(newExamplesCmd(opts))
	root.AddCommand(newWordsCmd(opts))
	root.AddCommand(newFetchCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig reads the configuration file selected by --config, falling
// back to the default location and defaults.
func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(o.configPath)
}

// newCache builds the cache selected by the flags and config: null when
// disabled, otherwise the local file cache.
func (o *rootOptions) newCache(cfg config.Config) cache.Cache {
	if o.noCache || cfg.Cache.Disabled {
		return cache.NewNullCache()
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// newRunner builds a comparison runner backed by the configured cache.
func (o *rootOptions) newRunner(ctx context.Context, cfg config.Config) *compare.Runner {
	return compare.NewRunner(o.newCache(cfg), loggerFromContext(ctx))
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/vertexsim).
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
