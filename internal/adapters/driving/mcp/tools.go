package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// defaultListLimit caps list_entries when no limit is given.
const defaultListLimit = domain.DefaultBrowseLimit

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Term string `json:"term" jsonschema:"substring to look for in the recognised text of each image"`
	Fold bool   `json:"fold,omitempty" jsonschema:"lowercase the term before matching; indexed text is always lowercased"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Term      string   `json:"term"`
	Matches   []string `json:"matches"`
	Count     int      `json:"count"`
	ElapsedMS float64  `json:"elapsed_ms"`
	// Warning is set when the match list could not be written to disk.
	Warning string `json:"warning,omitempty"`
}

// ListEntriesInput is the input schema for the list_entries tool.
type ListEntriesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default 10, -1 for all)"`
}

// EntryOutput is the summary of one image.
type EntryOutput struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ListEntriesOutput is the output schema for the list_entries tool.
type ListEntriesOutput struct {
	Entries []EntryOutput `json:"entries"`
	Total   int           `json:"total"`
}

// GetEntryInput is the input schema for the get_entry tool.
type GetEntryInput struct {
	Name string `json:"name" jsonschema:"image filename as it appears in the index"`
}

// WordOutput is one recognised word with its bounding box.
type WordOutput struct {
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LineOutput is one recognised line.
type LineOutput struct {
	Text  string       `json:"text"`
	Words []WordOutput `json:"words"`
}

// GetEntryOutput is the output schema for the get_entry tool.
type GetEntryOutput struct {
	Name  string       `json:"name"`
	Text  string       `json:"text"`
	Lines []LineOutput `json:"lines"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Find screenshots whose recognised text contains a term",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List indexed screenshots in natural filename order",
	}, s.handleListEntries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_entry",
		Description: "Get the recognised text, lines and word boxes of one screenshot",
	}, s.handleGetEntry)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	result, err := s.ports.Search.Search(ctx, input.Term, domain.SearchOptions{FoldQuery: input.Fold})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Term:      result.Term,
		Matches:   result.Matches,
		Count:     result.Count(),
		ElapsedMS: float64(result.Elapsed.Microseconds()) / 1000,
	}

	if s.ports.History != nil {
		if err := s.ports.History.Record(ctx, s.ports.Search.Stats().Path, result); err != nil {
			logger.Warn("Recording history failed: %v", err)
		}
	}

	if s.ports.Sink != nil {
		if err := s.ports.Sink.Present(ctx, result); err != nil {
			if !errors.Is(err, domain.ErrWrite) {
				return nil, SearchOutput{}, err
			}
			output.Warning = err.Error()
		}
	}

	return nil, output, nil
}

// handleListEntries handles the list_entries tool invocation.
func (s *Server) handleListEntries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListEntriesInput,
) (*mcp.CallToolResult, ListEntriesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	entries, err := s.ports.Search.Browse(ctx, limit)
	if err != nil {
		return nil, ListEntriesOutput{}, err
	}

	output := ListEntriesOutput{
		Entries: make([]EntryOutput, len(entries)),
		Total:   s.ports.Search.Stats().Entries,
	}
	for i, e := range entries {
		output.Entries[i] = EntryOutput{Name: e.Name, Text: e.Entry.Text}
	}
	return nil, output, nil
}

// handleGetEntry handles the get_entry tool invocation.
func (s *Server) handleGetEntry(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEntryInput,
) (*mcp.CallToolResult, GetEntryOutput, error) {
	if input.Name == "" {
		return nil, GetEntryOutput{}, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	entry, err := s.ports.Search.Entry(ctx, input.Name)
	if err != nil {
		return nil, GetEntryOutput{}, err
	}

	return nil, toEntryOutput(input.Name, entry), nil
}

func toEntryOutput(name string, entry *domain.ImageEntry) GetEntryOutput {
	output := GetEntryOutput{
		Name:  name,
		Text:  entry.Text,
		Lines: make([]LineOutput, len(entry.Lines)),
	}
	for i, line := range entry.Lines {
		words := make([]WordOutput, len(line.Words))
		for j, w := range line.Words {
			words[j] = WordOutput{
				Text:   w.Text,
				X:      w.BoundingRect.X,
				Y:      w.BoundingRect.Y,
				Width:  w.BoundingRect.Width,
				Height: w.BoundingRect.Height,
			}
		}
		output.Lines[i] = LineOutput{Text: line.Text, Words: words}
	}
	return output
}
