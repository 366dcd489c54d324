package domain

import "time"

// SearchOptions configures a search query.
type SearchOptions struct {
	// FoldQuery lowercases the term before matching.
	// Indexed text is always lowercased; the term is used as-is unless set.
	FoldQuery bool
}

// SearchResult is the outcome of one search.
type SearchResult struct {
	// Term is the term that was matched, after any folding.
	Term string

	// Matches are the matching image names in natural order.
	// Never nil for a completed search.
	Matches []string

	// Elapsed is the time spent searching.
	Elapsed time.Duration
}

// Count returns the number of matches.
func (r SearchResult) Count() int {
	return len(r.Matches)
}

// IndexStats describes a loaded index.
type IndexStats struct {
	// Path is the file the index was loaded from.
	Path string

	// Entries is the number of images in the index.
	Entries int

	// Elapsed is the time spent loading.
	Elapsed time.Duration
}
