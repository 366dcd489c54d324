package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/services"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

var (
	searchJSON     bool
	searchFold     bool
	searchShowText bool
)

var searchCmd = &cobra.Command{
	Use:   "search <index.json> <term>",
	Short: "Search the index once and exit",
	Long: `Loads the index, runs a single substring search and prints the matching
filenames in natural order. The matches are also written to the results file.

Indexed text is lowercased before matching; the term is used as given unless
--fold is set or search.fold_query is enabled.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchFold, "fold", false, "lowercase the term before searching")
	searchCmd.Flags().BoolVar(&searchShowText, "show-text", false, "print the recognised text of each match")
	rootCmd.AddCommand(searchCmd)
}

// searchJSONOutput is the --json shape.
type searchJSONOutput struct {
	Term      string   `json:"term"`
	Matches   []string `json:"matches"`
	Count     int      `json:"count"`
	ElapsedMS float64  `json:"elapsed_ms"`
	Warning   string   `json:"warning,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	settings := currentSettings(d)
	ctx := cmd.Context()

	search, err := openIndex(ctx, d, args[0])
	if err != nil {
		return err
	}

	opts := domain.SearchOptions{FoldQuery: searchFold || settings.FoldQuery}
	result, err := search.Search(ctx, args[1], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if history := historyFor(d, settings); history != nil {
		if err := history.Record(ctx, search.Stats().Path, result); err != nil {
			logger.Warn("Recording history failed: %v", err)
		}
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		out = nil
	}
	sink := services.NewResultSink(out, resultWriter(d, settings))

	var warning string
	if err := sink.Present(ctx, result); err != nil {
		if !errors.Is(err, domain.ErrWrite) {
			return fmt.Errorf("present results: %w", err)
		}
		warning = err.Error()
		if !searchJSON {
			cmd.PrintErrf("Warning: %v\n", err)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, result, warning)
	}
	if searchShowText {
		return outputMatchText(cmd, search, result.Matches)
	}
	return nil
}

func outputSearchJSON(cmd *cobra.Command, result domain.SearchResult, warning string) error {
	matches := result.Matches
	if matches == nil {
		matches = []string{}
	}
	data, err := json.MarshalIndent(searchJSONOutput{
		Term:      result.Term,
		Matches:   matches,
		Count:     result.Count(),
		ElapsedMS: float64(result.Elapsed.Microseconds()) / 1000,
		Warning:   warning,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMatchText(cmd *cobra.Command, search *services.SearchService, names []string) error {
	for _, name := range names {
		entry, err := search.Entry(cmd.Context(), name)
		if err != nil {
			return fmt.Errorf("entry %s: %w", name, err)
		}
		cmd.Printf(">>  '%s':\n", name)
		cmd.Printf("    '%s'\n\n", strings.ReplaceAll(entry.Text, "\n", "\n     "))
	}
	return nil
}
