package tui

import "errors"

var (
	// ErrMissingSearchService is returned when the app has no index to search.
	ErrMissingSearchService = errors.New("tui: no index loaded")

	// ErrInvalidPorts is returned when NewApp receives nil ports.
	ErrInvalidPorts = errors.New("tui: invalid ports configuration")
)
