// Package journal records every API call a run makes into a SQLite
// file next to the cache, so partial generation runs can be debugged
// after the fact. Journaling is best-effort: a write failure never
// fails the run.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/schoolseed/internal/api"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS api_calls (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    called_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    method      TEXT NOT NULL,
    path        TEXT NOT NULL,
    status      INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    detail      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_api_calls_status ON api_calls(status);
`

// Journal is a SQLite-backed API call log.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database and ensures
// the schema exists.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// LogCall implements api.CallLogger. Errors are swallowed: the
// journal must never turn a successful API call into a failure.
func (j *Journal) LogCall(entry api.CallEntry) {
	_, _ = j.db.Exec(
		"INSERT INTO api_calls (method, path, status, duration_ms, detail) VALUES (?, ?, ?, ?, ?)",
		entry.Method, entry.Path, entry.Status, entry.Duration.Milliseconds(), entry.Detail,
	)
}

// Entry is one journal row.
type Entry struct {
	ID         int64
	CalledAt   time.Time
	Method     string
	Path       string
	Status     int
	DurationMS int64
	Detail     string
}

// Tail returns the most recent n entries, newest first.
func (j *Journal) Tail(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		"SELECT id, called_at, method, path, status, duration_ms, detail FROM api_calls ORDER BY id DESC LIMIT ?",
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CalledAt, &e.Method, &e.Path, &e.Status, &e.DurationMS, &e.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FailureCount returns the number of journaled non-2xx calls.
func (j *Journal) FailureCount() (int, error) {
	var n int
	err := j.db.QueryRow("SELECT COUNT(*) FROM api_calls WHERE status < 200 OR status > 299").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal failures: %w", err)
	}
	return n, nil
}
