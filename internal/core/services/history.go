package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records completed searches.
type HistoryService struct {
	store driven.HistoryStore
	now   func() time.Time
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{
		store: store,
		now:   time.Now,
	}
}

// Record stores a completed search. The store assigns the record ID.
func (s *HistoryService) Record(ctx context.Context, indexPath string, result domain.SearchResult) error {
	record := domain.HistoryRecord{
		IndexPath:  indexPath,
		Term:       result.Term,
		MatchCount: result.Count(),
		Elapsed:    result.Elapsed,
		CreatedAt:  s.now(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidInput
	}
	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
