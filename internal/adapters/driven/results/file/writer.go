// Package file persists the latest match list to a plain text file so other
// tools can pick it up.
package file

import (
	"context"
	"os"
	"strings"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ResultWriter = (*Writer)(nil)

// Writer overwrites a text file with newline-joined filenames.
type Writer struct {
	path string
}

// NewWriter creates a writer for path. An empty path uses
// domain.DefaultResultsPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = domain.DefaultResultsPath
	}
	return &Writer{path: path}
}

// Write replaces the file contents with names joined by "\n".
// There is no trailing newline, and an empty list truncates the file.
func (w *Writer) Write(ctx context.Context, names []string) error {
	if err := ctx.Err(); err != nil {
		return &domain.WriteError{Path: w.path, Err: err}
	}
	if err := os.WriteFile(w.path, []byte(strings.Join(names, "\n")), 0644); err != nil {
		return &domain.WriteError{Path: w.path, Err: err}
	}
	return nil
}

// Path returns the file being written.
func (w *Writer) Path() string {
	return w.path
}
