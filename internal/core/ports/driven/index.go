package driven

import (
	"context"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// IndexLoader materialises an index from storage.
// Backed by a JSON file produced out-of-band by the OCR indexer.
type IndexLoader interface {
	// Load reads the whole index at path.
	// Any failure is a *domain.LoadError and no partial index is returned.
	Load(ctx context.Context, path string) (*domain.Index, domain.IndexStats, error)
}
