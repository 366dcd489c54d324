package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/shotsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/shotsearch/internal/core/services"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui <index.json>",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface over an index.

Matches are listed next to a preview of the selected image's recognised
text. Every search also writes the results file.

Controls:
  Enter    - Search / Preview
  ↑/k, ↓/j - Navigate matches
  /, n     - New search
  w        - Toggle word boxes in preview
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	d, err := loadDeps()
	if err != nil {
		return err
	}
	settings := currentSettings(d)
	indexPath := args[0]

	search, err := openIndex(cmd.Context(), d, indexPath)
	if err != nil {
		return err
	}

	// The TUI renders results itself; the sink only persists them.
	sink := services.NewResultSink(nil, resultWriter(d, settings))
	ports := tui.NewPorts(search, sink, historyFor(d, settings), d.Settings)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	g, gctx := errgroup.WithContext(cmd.Context())
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	g.Go(func() error {
		defer stopWatch()
		if err := app.Run(gctx); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})

	if settings.WatchEnabled && d.Watcher != nil {
		g.Go(func() error {
			if err := d.Watcher.Watch(watchCtx, indexPath, app.NotifyIndexChanged); err != nil {
				logger.Warn("Index watcher stopped: %v", err)
			}
			return nil
		})
	}

	return g.Wait()
}
