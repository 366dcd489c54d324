package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Lists the most recent searches, newest first, with the index searched,
the number of matches and how long the search took.

Recording is controlled by the history.enabled setting.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of searches to show (0 = all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded searches")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	if d.History == nil {
		return errors.New("history store not configured")
	}

	if historyClear {
		if err := d.History.Clear(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("History cleared.")
		return nil
	}

	limit := currentSettings(d).HistoryLimit
	if cmd.Flags().Changed("limit") {
		limit = historyLimit
	}

	records, err := d.History.Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No searches recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tTERM\tMATCHES\tELAPSED\tINDEX")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%q\t%d\t%s\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Term, r.MatchCount, r.Elapsed, r.IndexPath)
	}
	return w.Flush()
}
