package domain

import "time"

// HistoryRecord is one completed search kept for later review.
type HistoryRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// IndexPath is the index file that was searched.
	IndexPath string

	// Term is the searched term.
	Term string

	// MatchCount is the number of matching images.
	MatchCount int

	// Elapsed is the search duration.
	Elapsed time.Duration

	// CreatedAt is when the search completed.
	CreatedAt time.Time
}
