package driven

import "context"

// QueryReader reads one query line at a time from the user.
// ReadQuery blocks until a line is available.
type QueryReader interface {
	// ReadQuery returns the next line without its terminator.
	// It returns domain.ErrInterrupted when the user cancels input or ctx is
	// done, and any other error when the input channel fails.
	ReadQuery(ctx context.Context) (string, error)
}
