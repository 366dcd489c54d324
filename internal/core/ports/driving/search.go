package driving

import (
	"context"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
// Implementations borrow a loaded index read-only.
type SearchService interface {
	// Search returns the names of all images whose lowercased text contains term.
	// The term itself is only lowercased when opts.FoldQuery is set.
	Search(ctx context.Context, term string, opts domain.SearchOptions) (domain.SearchResult, error)

	// Browse returns the first limit entries in natural name order.
	// A limit of zero or less returns every entry.
	Browse(ctx context.Context, limit int) ([]domain.IndexEntry, error)

	// Entry returns the recognition result for one image.
	Entry(ctx context.Context, name string) (*domain.ImageEntry, error)

	// Stats describes the loaded index.
	Stats() domain.IndexStats
}
