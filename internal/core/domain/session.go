package domain

// SessionState is a state of the interactive search session.
type SessionState int

const (
	// StateAwaitingQuery waits for the next query line.
	StateAwaitingQuery SessionState = iota
	// StateSearching runs a search for the submitted query.
	StateSearching
	// StatePresentingResults renders and persists the matches.
	StatePresentingResults
	// StateBrowsingEntries lists the first entries of the index.
	StateBrowsingEntries
	// StateTerminated is terminal.
	StateTerminated
)

// String returns the string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StateAwaitingQuery:
		return "awaiting_query"
	case StateSearching:
		return "searching"
	case StatePresentingResults:
		return "presenting_results"
	case StateBrowsingEntries:
		return "browsing_entries"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// EventKind identifies a session event.
type EventKind int

const (
	// EventQuery carries a line of user input.
	EventQuery EventKind = iota
	// EventSearchDone signals the search finished.
	EventSearchDone
	// EventPresented signals the results were presented.
	EventPresented
	// EventBrowsed signals the browse listing was shown.
	EventBrowsed
	// EventInterrupt signals the user cancelled input.
	EventInterrupt
	// EventInputFailed signals the input channel broke.
	EventInputFailed
)

// SessionEvent is an input to the session state machine.
type SessionEvent struct {
	Kind EventKind

	// Query is set for EventQuery.
	Query string

	// Err is set for EventInputFailed.
	Err error
}

// SessionEffect is the side effect the driver must perform after a transition.
type SessionEffect int

const (
	// EffectNone performs nothing.
	EffectNone SessionEffect = iota
	// EffectPrompt reads the next query.
	EffectPrompt
	// EffectSearch runs a search for the event's query.
	EffectSearch
	// EffectPresent presents the last search result.
	EffectPresent
	// EffectBrowse lists the first entries.
	EffectBrowse
	// EffectExit ends the session successfully.
	EffectExit
	// EffectReportAndExit reports the input error and ends the session.
	EffectReportAndExit
)

// String returns the string representation of the effect.
func (e SessionEffect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectPrompt:
		return "prompt"
	case EffectSearch:
		return "search"
	case EffectPresent:
		return "present"
	case EffectBrowse:
		return "browse"
	case EffectExit:
		return "exit"
	case EffectReportAndExit:
		return "report_and_exit"
	default:
		return "unknown"
	}
}

// NextState computes the transition for event in state.
// It is pure: unknown pairs leave the state unchanged with EffectNone.
func NextState(state SessionState, event SessionEvent) (SessionState, SessionEffect) {
	if state == StateTerminated {
		return StateTerminated, EffectNone
	}

	switch event.Kind {
	case EventInterrupt:
		return StateTerminated, EffectExit
	case EventInputFailed:
		return StateTerminated, EffectReportAndExit
	}

	switch state {
	case StateAwaitingQuery:
		if event.Kind == EventQuery {
			if event.Query == "" {
				return StateBrowsingEntries, EffectBrowse
			}
			return StateSearching, EffectSearch
		}
	case StateSearching:
		if event.Kind == EventSearchDone {
			return StatePresentingResults, EffectPresent
		}
	case StatePresentingResults:
		if event.Kind == EventPresented {
			return StateAwaitingQuery, EffectPrompt
		}
	case StateBrowsingEntries:
		if event.Kind == EventBrowsed {
			return StateAwaitingQuery, EffectPrompt
		}
	case StateTerminated:
		// handled above
	}

	return state, EffectNone
}
