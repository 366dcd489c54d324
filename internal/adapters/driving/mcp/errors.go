// Package mcp provides an MCP (Model Context Protocol) server adapter for shotsearch.
// It lets AI assistants query a loaded screenshot text index.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
