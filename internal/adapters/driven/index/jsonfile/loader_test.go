package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

const validIndex = `{
  "img1.png": {
    "text": "Hello World\nSecond line",
    "lines": [
      {
        "text": "Hello World",
        "words": [
          {"text": "Hello", "bounding_rect": {"height": 10, "width": 40, "x": 1.5, "y": 2}},
          {"text": "World", "bounding_rect": {"height": 10, "width": 42, "x": 50, "y": 2}}
        ]
      },
      {"text": "Second line", "words": []}
    ],
    "extra": "ignored"
  },
  "img2.png": {"text": "", "lines": []}
}`

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load_Valid(t *testing.T) {
	path := writeIndex(t, validIndex)

	index, stats, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	require.NotNil(t, index)
	assert.Equal(t, 2, index.Len())
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, path, stats.Path)

	entry, ok := index.Get("img1.png")
	require.True(t, ok)
	assert.Equal(t, "Hello World\nSecond line", entry.Text)
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, "Hello World", entry.Lines[0].Text)
	require.Len(t, entry.Lines[0].Words, 2)
	assert.Equal(t, domain.Word{
		Text:         "Hello",
		BoundingRect: domain.WordBox{Height: 10, Width: 40, X: 1.5, Y: 2},
	}, entry.Lines[0].Words[0])
	assert.Empty(t, entry.Lines[1].Words)

	empty, ok := index.Get("img2.png")
	require.True(t, ok)
	assert.Empty(t, empty.Text)
	assert.Empty(t, empty.Lines)
}

func TestLoader_Load_RoundTripPreservesText(t *testing.T) {
	path := writeIndex(t, `{"ü.png": {"text": "  Ünïcödé\ttabs  ", "lines": []}}`)

	index, _, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	entry, ok := index.Get("ü.png")
	require.True(t, ok)
	assert.Equal(t, "  Ünïcödé\ttabs  ", entry.Text)
}

func TestLoader_Load_EmptyObject(t *testing.T) {
	path := writeIndex(t, `{}`)

	index, stats, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 0, index.Len())
	assert.Equal(t, 0, stats.Entries)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	index, _, err := NewLoader().Load(context.Background(), path)

	assert.Nil(t, index)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoader_Load_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"malformed json", `{"a.png": {`, ""},
		{"empty file", ``, "JSON object"},
		{"top-level array", `[]`, "JSON object"},
		{"top-level null", `null`, "JSON object"},
		{"top-level scalar", `42`, "JSON object"},
		{"missing entry text", `{"a.png": {"lines": []}}`, `entry "a.png": missing field text`},
		{"missing entry lines", `{"a.png": {"text": "x"}}`, `entry "a.png": missing field lines`},
		{"null lines", `{"a.png": {"text": "x", "lines": null}}`, "missing field lines"},
		{"missing line text", `{"a.png": {"text": "x", "lines": [{"words": []}]}}`, "lines[0].text"},
		{"missing line words", `{"a.png": {"text": "x", "lines": [{"text": "x"}]}}`, "lines[0].words"},
		{
			"missing word rect",
			`{"a.png": {"text": "x", "lines": [{"text": "x", "words": [{"text": "x"}]}]}}`,
			"lines[0].words[0].bounding_rect",
		},
		{
			"missing word text",
			`{"a.png": {"text": "x", "lines": [{"text": "x", "words": [
				{"bounding_rect": {"height": 1, "width": 1, "x": 0, "y": 0}}]}]}}`,
			"lines[0].words[0].text",
		},
		{
			"missing box coordinate",
			`{"a.png": {"text": "x", "lines": [{"text": "x", "words": [
				{"text": "x", "bounding_rect": {"height": 1, "width": 1, "x": 0}}]}]}}`,
			"lines[0].words[0].bounding_rect.y",
		},
		{"wrong text type", `{"a.png": {"text": 5, "lines": []}}`, `entry "a.png"`},
		{"wrong lines type", `{"a.png": {"text": "x", "lines": "nope"}}`, `entry "a.png"`},
		{"entry not object", `{"a.png": "text"}`, `entry "a.png"`},
		{"null entry", `{"a.png": null}`, "missing field lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeIndex(t, tt.content)

			index, _, err := NewLoader().Load(context.Background(), path)

			assert.Nil(t, index)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrLoad)
			var loadErr *domain.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, path, loadErr.Path)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoader_Load_AllOrNothing(t *testing.T) {
	path := writeIndex(t, `{
		"good.png": {"text": "fine", "lines": []},
		"bad.png": {"lines": []}
	}`)

	index, _, err := NewLoader().Load(context.Background(), path)

	assert.Nil(t, index)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.Contains(t, err.Error(), "bad.png")
}

func TestLoader_Load_FirstDefectIsStable(t *testing.T) {
	path := writeIndex(t, `{
		"z.png": {"lines": []},
		"a.png": {"lines": []},
		"m.png": {"lines": []}
	}`)

	for range 5 {
		_, _, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `entry "a.png"`)
	}
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	path := writeIndex(t, validIndex)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	index, _, err := NewLoader().Load(ctx, path)

	assert.Nil(t, index)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.ErrorIs(t, err, context.Canceled)
}
