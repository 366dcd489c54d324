package driven

import "context"

// FileWatcher reports changes to a file on disk.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange for each write,
	// create, rename or remove affecting path.
	Watch(ctx context.Context, path string, onChange func(path string)) error
}
