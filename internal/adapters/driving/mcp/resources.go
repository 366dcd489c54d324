package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for shotsearch resources.
	uriScheme = "shotsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "index",
		Name:        "index",
		Description: "Path and entry count of the loaded index",
		MIMEType:    "application/json",
	}, s.handleIndexResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "entries/{name}",
		Name:        "entry-text",
		Description: "Recognised text of one screenshot",
		MIMEType:    "text/plain",
	}, s.handleEntryResource)
}

// handleIndexResource describes the loaded index.
func (s *Server) handleIndexResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Search.Stats()

	info := struct {
		Path    string  `json:"path"`
		Entries int     `json:"entries"`
		LoadMS  float64 `json:"load_ms"`
	}{
		Path:    stats.Path,
		Entries: stats.Entries,
		LoadMS:  float64(stats.Elapsed.Microseconds()) / 1000,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling index info: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleEntryResource returns the aggregate text of one image.
func (s *Server) handleEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractEntryName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Search.Entry(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     entry.Text,
		}},
	}, nil
}

// extractEntryName extracts the image name from a URI like
// shotsearch://entries/{name}. The name may be percent-encoded.
func extractEntryName(uri string) string {
	const prefix = uriScheme + "entries/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}
