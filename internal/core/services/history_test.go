package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

func TestHistoryService_Record(t *testing.T) {
	store := &mockHistoryStore{}
	service := NewHistoryService(store)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	err := service.Record(context.Background(), "index.json", domain.SearchResult{
		Term:    "cat",
		Matches: []string{"a.png", "b.png", "c.png"},
		Elapsed: time.Second,
	})

	require.NoError(t, err)
	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.Equal(t, "index.json", rec.IndexPath)
	assert.Equal(t, "cat", rec.Term)
	assert.Equal(t, 3, rec.MatchCount)
	assert.Equal(t, time.Second, rec.Elapsed)
	assert.Equal(t, fixed, rec.CreatedAt)
}

func TestHistoryService_Record_StoreError(t *testing.T) {
	service := NewHistoryService(&mockHistoryStore{saveErr: errors.New("locked")})

	err := service.Record(context.Background(), "index.json", domain.SearchResult{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestHistoryService_Recent(t *testing.T) {
	store := &mockHistoryStore{records: []domain.HistoryRecord{
		{ID: "1", Term: "a"},
		{ID: "2", Term: "b"},
		{ID: "3", Term: "c"},
	}}
	service := NewHistoryService(store)

	records, err := service.Recent(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistoryService_Recent_NegativeLimit(t *testing.T) {
	service := NewHistoryService(&mockHistoryStore{})

	_, err := service.Recent(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_Recent_StoreError(t *testing.T) {
	service := NewHistoryService(&mockHistoryStore{listErr: errors.New("gone")})

	_, err := service.Recent(context.Background(), 5)

	assert.Error(t, err)
}

func TestHistoryService_Clear(t *testing.T) {
	store := &mockHistoryStore{records: []domain.HistoryRecord{{ID: "1"}}}
	service := NewHistoryService(store)

	require.NoError(t, service.Clear(context.Background()))
	assert.Empty(t, store.records)
}
