package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shotsearch/internal/core/services"
)

var entriesLimit int

var entriesCmd = &cobra.Command{
	Use:   "entries <index.json>",
	Short: "List the first entries of an index",
	Long: `Prints the first entries of the index in natural filename order, with the
recognised text of each image. This is the listing an empty query shows in an
interactive session.

Use --limit 0 to list every entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().IntVarP(&entriesLimit, "limit", "n", 10, "number of entries to list (0 = all)")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(cmd *cobra.Command, args []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	settings := currentSettings(d)

	limit := settings.BrowseLimit
	if cmd.Flags().Changed("limit") {
		limit = entriesLimit
	}
	if limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", limit)
	}

	search, err := openIndex(cmd.Context(), d, args[0])
	if err != nil {
		return err
	}

	entries, err := search.Browse(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	return services.NewResultSink(cmd.OutOrStdout(), nil).PresentEntries(cmd.Context(), entries)
}
