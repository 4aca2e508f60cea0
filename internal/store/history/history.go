// Package history keeps a local SQLite log of analysis invocations so
// operators can see what the engine has been asked to do. Recording is
// best-effort; a broken history file never fails an analysis request.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"vlogtagger/internal/models"
)

// Store implements store.AnalysisHistoryStore on SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if needed) the history database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("history path cannot be empty")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation TEXT NOT NULL,
			input_chars INTEGER NOT NULL,
			result_count INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record appends one analysis invocation.
func (s *Store) Record(ctx context.Context, rec *models.AnalysisRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analysis_history (operation, input_chars, result_count, created_at)
		 VALUES (?, ?, ?, ?)`,
		rec.Operation, rec.InputChars, rec.ResultCount, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("record analysis: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*models.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, operation, input_chars, result_count, created_at
		 FROM analysis_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analysis history: %w", err)
	}
	defer rows.Close()

	var recs []*models.AnalysisRecord
	for rows.Next() {
		var rec models.AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.Operation, &rec.InputChars, &rec.ResultCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis record: %w", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analysis history: %w", err)
	}
	return recs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
