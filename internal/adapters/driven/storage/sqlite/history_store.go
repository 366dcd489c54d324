package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
)

// Ensure historyStore implements the interface.
var _ driven.HistoryStore = (*historyStore)(nil)

// historyStore wraps Store to implement driven.HistoryStore.
type historyStore struct {
	store *Store
}

// Save appends a record, assigning an ID when the record has none.
func (s *historyStore) Save(ctx context.Context, record domain.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO search_history (id, index_path, term, match_count, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.IndexPath, record.Term, record.MatchCount,
		record.Elapsed.Nanoseconds(), record.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving history record: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	query := `
		SELECT id, index_path, term, match_count, elapsed_ns, created_at
		FROM search_history
		ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		rec, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return records, nil
}

// Clear removes all records.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func scanHistory(rows *sql.Rows) (domain.HistoryRecord, error) {
	var (
		rec       domain.HistoryRecord
		elapsedNS int64
		createdAt string
	)
	if err := rows.Scan(&rec.ID, &rec.IndexPath, &rec.Term, &rec.MatchCount, &elapsedNS, &createdAt); err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("scanning history: %w", err)
	}
	rec.Elapsed = time.Duration(elapsedNS)

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
