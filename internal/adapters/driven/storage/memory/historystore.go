package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Records live for the lifetime of the process.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.HistoryRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Save appends a record, assigning an ID when the record has none.
func (s *HistoryStore) Save(_ context.Context, record domain.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// List returns up to limit records, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.HistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := slices.Clone(s.records)
	slices.Reverse(result)
	slices.SortStableFunc(result, func(a, b domain.HistoryRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all records.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
