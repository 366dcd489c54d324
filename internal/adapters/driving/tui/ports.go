// Package tui provides an interactive terminal user interface for shotsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Search answers queries against the loaded index. Required.
	Search driving.SearchService

	// Sink persists each match list to the side-channel file.
	Sink driving.ResultSink

	// History records completed searches.
	History driving.HistoryService

	// Settings supplies browse limit, query folding and history toggles.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	sink driving.ResultSink,
	history driving.HistoryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Search:   search,
		Sink:     sink,
		History:  history,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
