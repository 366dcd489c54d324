package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/shotsearch/internal/core/services"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// runREPL loads the index once and answers queries until interrupted.
func runREPL(cmd *cobra.Command, args []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	settings := currentSettings(d)
	indexPath := args[0]

	ctx := cmd.Context()
	search, err := openIndex(ctx, d, indexPath)
	if err != nil {
		return err
	}
	stats := search.Stats()
	cmd.Printf("Index loaded in %s. %d entries found.\n", stats.Elapsed, stats.Entries)

	reader := newQueryReader(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	defer reader.Close()

	sink := services.NewResultSink(cmd.OutOrStdout(), resultWriter(d, settings))
	session := services.NewSession(search, sink, reader, cmd.OutOrStdout(), cmd.ErrOrStderr(), settings)
	if history := historyFor(d, settings); history != nil {
		session.SetHistory(history)
	}

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	g.Go(func() error {
		defer stopWatch()
		return session.Run(gctx)
	})

	if settings.WatchEnabled && d.Watcher != nil {
		g.Go(func() error {
			err := d.Watcher.Watch(watchCtx, indexPath, func(string) {
				reader.Notify(staleIndexNotice)
			})
			if err != nil {
				logger.Warn("Index watcher stopped: %v", err)
			}
			return nil
		})
	}

	return g.Wait()
}
