package driven

import "context"

// ResultWriter persists the latest match list for external tools.
type ResultWriter interface {
	// Write replaces the stored match list with names, in order.
	Write(ctx context.Context, names []string) error

	// Path returns where results are written.
	Path() string
}
