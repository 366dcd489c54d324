package driving

import (
	"context"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// HistoryService records and lists completed searches.
type HistoryService interface {
	// Record stores a completed search against indexPath.
	Record(ctx context.Context, indexPath string, result domain.SearchResult) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
