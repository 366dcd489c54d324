package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers substring queries against one loaded index.
// The index is borrowed read-only; SearchService never mutates it.
type SearchService struct {
	index *domain.Index
	stats domain.IndexStats
}

// NewSearchService creates a search service over index.
func NewSearchService(index *domain.Index, stats domain.IndexStats) *SearchService {
	return &SearchService{
		index: index,
		stats: stats,
	}
}

// Search returns every image whose text contains term, in natural order.
func (s *SearchService) Search(
	ctx context.Context, term string, opts domain.SearchOptions,
) (domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Term: %q", term)

	if s.index == nil {
		return domain.SearchResult{}, domain.ErrIndexNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("search: %w", err)
	}

	if opts.FoldQuery {
		term = FoldTerm(term)
		logger.Debug("Folded term: %q", term)
	}

	stop := logger.Timed("search")
	matches := FindTerm(s.index, term)
	elapsed := stop()

	logger.Info("Matches: %d of %d entries", len(matches), s.index.Len())

	return domain.SearchResult{
		Term:    term,
		Matches: matches,
		Elapsed: elapsed,
	}, nil
}

// Browse returns the first limit entries in natural name order.
func (s *SearchService) Browse(ctx context.Context, limit int) ([]domain.IndexEntry, error) {
	if s.index == nil {
		return nil, domain.ErrIndexNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("browse: %w", err)
	}

	names := s.index.Names()
	SortNatural(names)
	if limit > 0 && limit < len(names) {
		names = names[:limit]
	}

	entries := make([]domain.IndexEntry, 0, len(names))
	for _, name := range names {
		entry, _ := s.index.Get(name)
		entries = append(entries, domain.IndexEntry{Name: name, Entry: entry})
	}
	return entries, nil
}

// Entry returns the recognition result for name.
func (s *SearchService) Entry(_ context.Context, name string) (*domain.ImageEntry, error) {
	if s.index == nil {
		return nil, domain.ErrIndexNotLoaded
	}
	entry, ok := s.index.Get(name)
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", name, domain.ErrNotFound)
	}
	return &entry, nil
}

// Stats describes the loaded index.
func (s *SearchService) Stats() domain.IndexStats {
	return s.stats
}
