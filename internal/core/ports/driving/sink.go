package driving

import (
	"context"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// ResultSink presents search output to the user and downstream tools.
type ResultSink interface {
	// Present renders result and persists its matches to the side-channel file.
	// A persistence failure is returned as a *domain.WriteError after rendering.
	Present(ctx context.Context, result domain.SearchResult) error

	// PresentEntries renders a browse listing. Listings are not persisted.
	PresentEntries(ctx context.Context, entries []domain.IndexEntry) error
}
