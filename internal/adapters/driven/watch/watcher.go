// Package watch reports changes to the index file on disk using fsnotify.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// DefaultInterval is the minimum time between two change notifications.
const DefaultInterval = 5 * time.Second

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher notifies about changes to a single file.
//
// It watches the parent directory rather than the file itself, so editors
// that replace the file by rename are still seen.
type Watcher struct {
	interval time.Duration
}

// NewWatcher creates a watcher that notifies at most once per interval.
// A non-positive interval uses DefaultInterval.
func NewWatcher(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{interval: interval}
}

// Watch blocks until ctx is done. It returns nil on cancellation.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("Watching %s for changes", abs)

	limiter := rate.NewLimiter(rate.Every(w.interval), 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !limiter.Allow() {
				logger.Debug("Suppressed change notice for %s (%s)", abs, event.Op)
				continue
			}
			onChange(abs)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
