package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	entries  map[string]domain.ImageEntry
	order    []string
	err      error
	lastOpts domain.SearchOptions
}

func newMockSearchService() *mockSearchService {
	return &mockSearchService{
		entries: map[string]domain.ImageEntry{
			"img1.png": {Text: "receipt"},
			"img2.png": {
				Text: "invoice draft",
				Lines: []domain.Line{{
					Text: "invoice draft",
					Words: []domain.Word{
						{Text: "invoice", BoundingRect: domain.WordBox{X: 1, Y: 2, Width: 30, Height: 8}},
						{Text: "draft", BoundingRect: domain.WordBox{X: 35, Y: 2, Width: 20, Height: 8}},
					},
				}},
			},
			"my shot.png": {Text: "spaced name"},
		},
		order: []string{"img1.png", "img2.png", "my shot.png"},
	}
}

func (m *mockSearchService) Search(
	_ context.Context, term string, opts domain.SearchOptions,
) (domain.SearchResult, error) {
	m.lastOpts = opts
	if m.err != nil {
		return domain.SearchResult{}, m.err
	}
	if opts.FoldQuery {
		term = strings.ToLower(term)
	}
	matches := []string{}
	for _, name := range m.order {
		if strings.Contains(m.entries[name].Text, term) {
			matches = append(matches, name)
		}
	}
	return domain.SearchResult{Term: term, Matches: matches, Elapsed: 1500 * time.Microsecond}, nil
}

func (m *mockSearchService) Browse(_ context.Context, limit int) ([]domain.IndexEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.IndexEntry{}
	for _, name := range m.order {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, domain.IndexEntry{Name: name, Entry: m.entries[name]})
	}
	return out, nil
}

func (m *mockSearchService) Entry(_ context.Context, name string) (*domain.ImageEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[name]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", name, domain.ErrNotFound)
	}
	return &e, nil
}

func (m *mockSearchService) Stats() domain.IndexStats {
	return domain.IndexStats{Path: "index.json", Entries: len(m.entries), Elapsed: 2 * time.Millisecond}
}

// mockSink is a mock implementation of driving.ResultSink.
type mockSink struct {
	presented []domain.SearchResult
	err       error
}

func (m *mockSink) Present(_ context.Context, result domain.SearchResult) error {
	m.presented = append(m.presented, result)
	return m.err
}

func (m *mockSink) PresentEntries(_ context.Context, _ []domain.IndexEntry) error {
	return nil
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	recorded []domain.SearchResult
	err      error
}

func (m *mockHistoryService) Record(_ context.Context, _ string, result domain.SearchResult) error {
	m.recorded = append(m.recorded, result)
	return m.err
}

func (m *mockHistoryService) Recent(_ context.Context, _ int) ([]domain.HistoryRecord, error) {
	return nil, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
