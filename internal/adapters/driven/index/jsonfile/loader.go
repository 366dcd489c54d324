package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
	"github.com/custodia-labs/shotsearch/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.IndexLoader = (*Loader)(nil)

// Loader reads an index from a JSON file.
type Loader struct{}

// NewLoader creates a JSON index loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the whole index at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Index, domain.IndexStats, error) {
	logger.Section("Index Load")
	logger.Debug("Path: %s", path)
	stop := logger.Timed("load index")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IndexStats{}, &domain.LoadError{Path: path, Reason: "cannot read file", Err: err}
	}

	entries, err := decode(ctx, data)
	if err != nil {
		var le *domain.LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, domain.IndexStats{}, le
		}
		return nil, domain.IndexStats{}, &domain.LoadError{Path: path, Reason: "invalid JSON", Err: err}
	}

	index := domain.NewIndex(entries)
	stats := domain.IndexStats{
		Path:    path,
		Entries: index.Len(),
		Elapsed: stop(),
	}
	logger.Info("Loaded %d entries in %s", stats.Entries, stats.Elapsed)

	return index, stats, nil
}

// decode parses data into entries. Schema violations are returned as
// *domain.LoadError without a path.
func decode(ctx context.Context, data []byte) (map[string]domain.ImageEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &domain.LoadError{Reason: "top-level value must be a JSON object"}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	entries := make(map[string]domain.ImageEntry, len(raw))
	// Sorted so the first reported defect is stable across runs.
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		msg := raw[name]
		if err := ctx.Err(); err != nil {
			return nil, &domain.LoadError{Reason: "cancelled", Err: err}
		}

		var wire wireEntry
		if err := json.Unmarshal(msg, &wire); err != nil {
			return nil, &domain.LoadError{Reason: fmt.Sprintf("entry %q", name), Err: err}
		}

		entry, missing := wire.toDomain()
		if missing != "" {
			return nil, &domain.LoadError{Reason: fmt.Sprintf("entry %q: missing field %s", name, missing)}
		}
		entries[name] = entry
	}

	return entries, nil
}
