package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntryName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"plain name", "shotsearch://entries/img1.png", "img1.png"},
		{"escaped name", "shotsearch://entries/my%20shot.png", "my shot.png"},
		{"invalid prefix", "file://entries/img1.png", ""},
		{"bad escape", "shotsearch://entries/%zz", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEntryName(tt.uri))
		})
	}
}

// makeReadResourceRequest creates a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleIndexResource(t *testing.T) {
	server := newTestServer(t, &Ports{Search: newMockSearchService()})

	result, err := server.handleIndexResource(context.Background(), makeReadResourceRequest("shotsearch://index"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.JSONEq(t, `{"path":"index.json","entries":3,"load_ms":2}`, result.Contents[0].Text)
}

func TestServer_handleEntryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entry text", func(t *testing.T) {
		server := newTestServer(t, &Ports{Search: newMockSearchService()})

		result, err := server.handleEntryResource(ctx, makeReadResourceRequest("shotsearch://entries/my%20shot.png"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "spaced name", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("unknown entry is not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Search: newMockSearchService()})

		_, err := server.handleEntryResource(ctx, makeReadResourceRequest("shotsearch://entries/nope.png"))

		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		server := newTestServer(t, &Ports{Search: newMockSearchService()})

		_, err := server.handleEntryResource(ctx, makeReadResourceRequest("shotsearch://other"))

		require.Error(t, err)
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		search := newMockSearchService()
		search.err = errors.New("boom")
		server := newTestServer(t, &Ports{Search: search})

		_, err := server.handleEntryResource(ctx, makeReadResourceRequest("shotsearch://entries/img1.png"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "getting entry")
	})
}
