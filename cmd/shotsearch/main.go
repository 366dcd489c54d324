// Command shotsearch searches the recognised text of a screenshot collection.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/shotsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/shotsearch/internal/adapters/driven/index/jsonfile"
	results "github.com/custodia-labs/shotsearch/internal/adapters/driven/results/file"
	"github.com/custodia-labs/shotsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/shotsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/shotsearch/internal/adapters/driven/watch"
	"github.com/custodia-labs/shotsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/core/services"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetDepsFactory(buildDeps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}

// buildDeps wires the production adapters for configDir.
func buildDeps(configDir string) (*cli.Deps, error) {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Invalid config, using defaults: %v", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	d := &cli.Deps{
		Loader:   jsonfile.NewLoader(),
		Settings: settingsService,
		Watcher:  watch.NewWatcher(watch.DefaultInterval),
		Results: func(path string) driven.ResultWriter {
			return results.NewWriter(path)
		},
	}

	historyStore := driven.HistoryStore(memory.NewHistoryStore())
	if settings.HistoryEnabled {
		store, err := sqlite.NewStore(dataDir(configDir))
		if err != nil {
			logger.Warn("History database unavailable, keeping history in memory: %v", err)
		} else {
			historyStore = store.HistoryStore()
			d.Close = store.Close
		}
	}
	d.History = services.NewHistoryService(historyStore)

	return d, nil
}

func dataDir(configDir string) string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}
