package mcp

import (
	"github.com/custodia-labs/shotsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Search answers queries against the loaded index. Required.
	Search driving.SearchService

	// Sink persists each match list to the side-channel file. Optional.
	Sink driving.ResultSink

	// History records completed searches. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
