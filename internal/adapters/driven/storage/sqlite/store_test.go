package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "history.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_AppliesMigrations(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.Version()

	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.HistoryStore().Save(context.Background(), domain.HistoryRecord{Term: "kept"}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	records, err := second.HistoryStore().List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Term)
}

func TestHistoryStore_SaveAndList(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, term := range []string{"first", "second", "third"} {
		err := history.Save(ctx, domain.HistoryRecord{
			IndexPath:  "/data/index.json",
			Term:       term,
			MatchCount: i,
			Elapsed:    time.Duration(i+1) * time.Millisecond,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	records, err := history.List(ctx, 0)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Term)
	assert.Equal(t, "first", records[2].Term)
	assert.Equal(t, 2, records[0].MatchCount)
	assert.Equal(t, 3*time.Millisecond, records[0].Elapsed)
	assert.True(t, base.Add(2*time.Minute).Equal(records[0].CreatedAt))
	assert.Equal(t, "/data/index.json", records[0].IndexPath)
	assert.NotEmpty(t, records[0].ID)
}

func TestHistoryStore_List_Limit(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	for range 5 {
		require.NoError(t, history.Save(ctx, domain.HistoryRecord{Term: "x"}))
	}

	records, err := history.List(ctx, 2)

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistoryStore_Save_KeepsGivenID(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, domain.HistoryRecord{ID: "fixed-id", Term: "x"}))

	records, err := history.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fixed-id", records[0].ID)
}

func TestHistoryStore_Save_DuplicateID(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, domain.HistoryRecord{ID: "dup"}))

	assert.Error(t, history.Save(ctx, domain.HistoryRecord{ID: "dup"}))
}

func TestHistoryStore_Clear(t *testing.T) {
	store := setupTestStore(t)
	history := store.HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, domain.HistoryRecord{Term: "x"}))
	require.NoError(t, history.Clear(ctx))

	records, err := history.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)

	records, err := store.HistoryStore().List(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, records)
}
