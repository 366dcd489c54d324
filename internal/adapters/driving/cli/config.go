package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
	Long: `Reads and writes settings in the configuration file.

Keys:
  results.path       file the latest matches are written to
  browse.limit       entries listed for an empty query
  search.fold_query  lowercase queries before searching
  history.enabled    record completed searches
  history.limit      searches shown by the history command
  watch.enabled      warn when the index file changes on disk
  mcp.port           HTTP port for mcp serve (0 = stdio)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one or all settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	if d.Settings == nil {
		return errors.New("settings not configured")
	}
	settings, err := d.Settings.Get()
	if err != nil {
		return err
	}

	values := settingValues(settings)
	if len(args) == 1 {
		v, ok := values[args[0]]
		if !ok {
			return fmt.Errorf("unknown key %q: %w", args[0], domain.ErrInvalidInput)
		}
		cmd.Println(v)
		return nil
	}

	for _, key := range d.Settings.Keys() {
		cmd.Printf("%s = %s\n", key, values[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	if d.Settings == nil {
		return errors.New("settings not configured")
	}
	if err := d.Settings.SetValue(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s set to %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	if d.Settings == nil {
		return errors.New("settings not configured")
	}
	cmd.Println(d.Settings.Path())
	return nil
}

// settingValues renders settings by config key.
func settingValues(s *domain.Settings) map[string]string {
	return map[string]string{
		"results.path":      s.ResultsPath,
		"browse.limit":      fmt.Sprint(s.BrowseLimit),
		"search.fold_query": fmt.Sprint(s.FoldQuery),
		"history.enabled":   fmt.Sprint(s.HistoryEnabled),
		"history.limit":     fmt.Sprint(s.HistoryLimit),
		"watch.enabled":     fmt.Sprint(s.WatchEnabled),
		"mcp.port":          fmt.Sprint(s.MCPPort),
	}
}
