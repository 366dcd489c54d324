package domain

// DefaultResultsPath is the side-channel file written after every search.
const DefaultResultsPath = "./last_matching_files.txt"

// DefaultBrowseLimit is the number of entries listed for an empty query.
const DefaultBrowseLimit = 10

// DefaultHistoryLimit is the number of history records shown by default.
const DefaultHistoryLimit = 20

// Settings holds the user-configurable behaviour of a session.
type Settings struct {
	// ResultsPath is the side-channel file for the latest match list.
	ResultsPath string

	// BrowseLimit is the number of entries shown for an empty query.
	BrowseLimit int

	// FoldQuery lowercases queries before searching.
	FoldQuery bool

	// HistoryEnabled records completed searches.
	HistoryEnabled bool

	// HistoryLimit is the number of records the history command shows.
	HistoryLimit int

	// WatchEnabled warns when the index file changes on disk.
	WatchEnabled bool

	// MCPPort is the HTTP port for the MCP server (0 = stdio).
	MCPPort int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ResultsPath:    DefaultResultsPath,
		BrowseLimit:    DefaultBrowseLimit,
		FoldQuery:      false,
		HistoryEnabled: true,
		HistoryLimit:   DefaultHistoryLimit,
		WatchEnabled:   true,
		MCPPort:        0,
	}
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if s.ResultsPath == "" {
		return ErrInvalidInput
	}
	if s.BrowseLimit < 0 || s.HistoryLimit < 0 {
		return ErrInvalidInput
	}
	if s.MCPPort < 0 || s.MCPPort > 65535 {
		return ErrInvalidInput
	}
	return nil
}
