package driven

import (
	"context"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// HistoryStore persists completed searches.
// Backed by SQLite.
type HistoryStore interface {
	// Save appends a record.
	Save(ctx context.Context, record domain.HistoryRecord) error

	// List returns up to limit records, newest first. A limit of zero or
	// less returns every record.
	List(ctx context.Context, limit int) ([]domain.HistoryRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
