package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// Session drives the load-once, query-many interaction.
// It runs one query at a time to completion before reading the next.
type Session struct {
	search   driving.SearchService
	sink     driving.ResultSink
	reader   driven.QueryReader
	history  driving.HistoryService
	out      io.Writer
	errOut   io.Writer
	settings domain.Settings
	state    domain.SessionState
}

// NewSession creates a session. out receives prompts and notices, errOut
// receives non-fatal error reports.
func NewSession(
	search driving.SearchService,
	sink driving.ResultSink,
	reader driven.QueryReader,
	out, errOut io.Writer,
	settings domain.Settings,
) *Session {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Session{
		search:   search,
		sink:     sink,
		reader:   reader,
		out:      out,
		errOut:   errOut,
		settings: settings,
		state:    domain.StateAwaitingQuery,
	}
}

// SetHistory enables recording of completed searches.
func (s *Session) SetHistory(history driving.HistoryService) {
	s.history = history
}

// State returns the current session state.
func (s *Session) State() domain.SessionState {
	return s.state
}

// Run reads and answers queries until the user interrupts input or the
// input channel fails. It returns nil on interrupt and a *domain.InputError
// on input failure.
func (s *Session) Run(ctx context.Context) error {
	var (
		query    string
		result   domain.SearchResult
		inputErr error
	)

	s.state = domain.StateAwaitingQuery
	effect := domain.EffectPrompt
	fmt.Fprintln(s.out, "Enter a term to search for, or <Ctrl-C> to exit:")

	for {
		switch effect {
		case domain.EffectPrompt:
			line, err := s.reader.ReadQuery(ctx)
			query, inputErr = line, err
			s.state, effect = domain.NextState(s.state, s.inputEvent(ctx, line, err))

		case domain.EffectSearch:
			var err error
			result, err = s.search.Search(ctx, query, domain.SearchOptions{FoldQuery: s.settings.FoldQuery})
			if err != nil {
				if ctx.Err() != nil {
					s.state, effect = domain.NextState(s.state, domain.SessionEvent{Kind: domain.EventInterrupt})
					continue
				}
				return fmt.Errorf("search %q: %w", query, err)
			}
			s.record(ctx, result)
			s.state, effect = domain.NextState(s.state, domain.SessionEvent{Kind: domain.EventSearchDone})

		case domain.EffectPresent:
			if err := s.sink.Present(ctx, result); err != nil {
				if !errors.Is(err, domain.ErrWrite) {
					return fmt.Errorf("present results: %w", err)
				}
				fmt.Fprintf(s.errOut, "Warning: %v\n", err)
			}
			s.state, effect = domain.NextState(s.state, domain.SessionEvent{Kind: domain.EventPresented})

		case domain.EffectBrowse:
			entries, err := s.search.Browse(ctx, s.settings.BrowseLimit)
			if err != nil {
				return fmt.Errorf("browse entries: %w", err)
			}
			if err := s.sink.PresentEntries(ctx, entries); err != nil {
				return fmt.Errorf("present entries: %w", err)
			}
			s.state, effect = domain.NextState(s.state, domain.SessionEvent{Kind: domain.EventBrowsed})

		case domain.EffectExit:
			fmt.Fprintln(s.out, "Ctrl-C pressed. Exiting.")
			return nil

		case domain.EffectReportAndExit:
			fmt.Fprintf(s.errOut, "Error reading input: %v\n", inputErr)
			return &domain.InputError{Err: inputErr}

		case domain.EffectNone:
			return fmt.Errorf("session stalled in state %s", s.state)
		}
	}
}

// inputEvent classifies the outcome of a read.
func (s *Session) inputEvent(ctx context.Context, line string, err error) domain.SessionEvent {
	switch {
	case err == nil:
		return domain.SessionEvent{Kind: domain.EventQuery, Query: line}
	case errors.Is(err, domain.ErrInterrupted), ctx.Err() != nil:
		return domain.SessionEvent{Kind: domain.EventInterrupt}
	default:
		return domain.SessionEvent{Kind: domain.EventInputFailed, Err: err}
	}
}

// record stores the search in history. Failures are logged only.
func (s *Session) record(ctx context.Context, result domain.SearchResult) {
	if s.history == nil || !s.settings.HistoryEnabled {
		return
	}
	if err := s.history.Record(ctx, s.search.Stats().Path, result); err != nil {
		logger.Warn("Recording history failed: %v", err)
	}
}
