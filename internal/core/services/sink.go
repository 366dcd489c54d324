package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// Ensure ResultSink implements the interface.
var _ driving.ResultSink = (*ResultSink)(nil)

// ResultSink renders matches to the session output and persists them
// through a ResultWriter.
type ResultSink struct {
	out    io.Writer
	writer driven.ResultWriter
}

// NewResultSink creates a result sink.
// out may be nil when the caller renders results itself (TUI, MCP);
// writer may be nil to disable persistence.
func NewResultSink(out io.Writer, writer driven.ResultWriter) *ResultSink {
	return &ResultSink{
		out:    out,
		writer: writer,
	}
}

// Present renders result, then persists its matches.
func (s *ResultSink) Present(ctx context.Context, result domain.SearchResult) error {
	if s.out != nil {
		fmt.Fprintf(s.out, "\nFound matches in %d images in %s:\n", result.Count(), result.Elapsed)
		fmt.Fprintf(s.out, "%s\n\n", strings.Join(result.Matches, "\n"))
	}

	if s.writer == nil {
		return nil
	}

	if err := s.writer.Write(ctx, result.Matches); err != nil {
		logger.Warn("Persisting results failed: %v", err)
		if errors.Is(err, domain.ErrWrite) {
			return err
		}
		return &domain.WriteError{Path: s.writer.Path(), Err: err}
	}
	logger.Debug("Wrote %d names to %s", result.Count(), s.writer.Path())
	return nil
}

// PresentEntries renders a browse listing.
func (s *ResultSink) PresentEntries(_ context.Context, entries []domain.IndexEntry) error {
	if s.out == nil {
		return nil
	}

	fmt.Fprintf(s.out, "\nFirst %d Entries:\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(s.out, ">>  '%s':\n", e.Name)
		fmt.Fprintf(s.out, "    '%s'\n\n", e.Entry.Text)
	}
	return nil
}
