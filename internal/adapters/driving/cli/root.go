// Package cli provides the cobra command tree for shotsearch.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
	"github.com/custodia-labs/shotsearch/internal/core/services"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// version is set at build time.
var version = "dev"

// Deps holds the adapters the commands are built from.
type Deps struct {
	// Loader reads index files.
	Loader driven.IndexLoader

	// Settings exposes the configuration file.
	Settings driving.SettingsService

	// History records and lists searches.
	History driving.HistoryService

	// Watcher reports index file changes. Optional.
	Watcher driven.FileWatcher

	// Results creates the side-channel writer for a results path.
	Results func(path string) driven.ResultWriter

	// Close releases storage handles. Optional.
	Close func() error
}

// DepsFactory builds Deps for a configuration directory.
// An empty configDir selects the default location.
type DepsFactory func(configDir string) (*Deps, error)

var (
	deps        *Deps
	depsFactory DepsFactory

	configDir string
	verbose   bool
)

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetDepsFactory sets how commands obtain their adapters.
func SetDepsFactory(f DepsFactory) {
	depsFactory = f
}

var rootCmd = &cobra.Command{
	Use:   "shotsearch <index.json>",
	Short: "Search the recognised text of screenshots",
	Long: `shotsearch loads an OCR index of screenshots and answers substring
queries against the recognised text of every image.

Run with an index file to start an interactive session. Each search prints the
matching filenames and writes them to the results file for other tools.
Submit an empty line to list the first entries. Press Ctrl-C to exit.`,
	Args:          requireIndexArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runREPL,
}

func init() {
	// cmd.Print* writes to stderr unless an output is set.
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.shotsearch)")
}

// requireIndexArg prints usage when the index path is missing.
func requireIndexArg(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	cmd.PrintErrln(cmd.UsageString())
	return fmt.Errorf("expected exactly one index file argument, got %d", len(args))
}

// Execute runs the root command and returns the process exit status.
func Execute(ctx context.Context) int {
	defer closeDeps()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Input faults were already reported by the session.
		if !errors.Is(err, domain.ErrInput) {
			rootCmd.PrintErrf("Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// loadDeps builds the adapters on first use.
func loadDeps() (*Deps, error) {
	if deps != nil {
		return deps, nil
	}
	if depsFactory == nil {
		return nil, errors.New("services not configured")
	}
	d, err := depsFactory(configDir)
	if err != nil {
		return nil, fmt.Errorf("initialise storage: %w", err)
	}
	deps = d
	return deps, nil
}

func closeDeps() {
	if deps == nil || deps.Close == nil {
		return
	}
	if err := deps.Close(); err != nil {
		logger.Warn("Closing storage failed: %v", err)
	}
}

// currentSettings returns the configured settings, falling back to defaults.
func currentSettings(d *Deps) domain.Settings {
	if d.Settings == nil {
		return domain.DefaultSettings()
	}
	s, err := d.Settings.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultSettings()
	}
	return *s
}

// historyFor returns the history service when recording is enabled.
func historyFor(d *Deps, settings domain.Settings) driving.HistoryService {
	if !settings.HistoryEnabled {
		return nil
	}
	return d.History
}

// resultWriter returns the side-channel writer for settings.
func resultWriter(d *Deps, settings domain.Settings) driven.ResultWriter {
	if d.Results == nil {
		return nil
	}
	return d.Results(settings.ResultsPath)
}

// openIndex loads path and returns a search service over it.
func openIndex(ctx context.Context, d *Deps, path string) (*services.SearchService, error) {
	if d.Loader == nil {
		return nil, errors.New("index loader not configured")
	}
	index, stats, err := d.Loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return services.NewSearchService(index, stats), nil
}
