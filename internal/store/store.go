package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// schemaSQL creates the request event log. Each row is one remote call.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS llm_request_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id    TEXT    NOT NULL,
	timestamp_ms  INTEGER NOT NULL,
	provider      TEXT    NOT NULL,
	model         TEXT    NOT NULL,
	purpose       TEXT    NOT NULL,
	kind          TEXT    NOT NULL,
	input_tokens  INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	latency_ms    INTEGER NOT NULL DEFAULT 0,
	success       INTEGER NOT NULL,
	error_message TEXT    NOT NULL DEFAULT '',
	request_body  TEXT    NOT NULL DEFAULT '',
	response_body TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_llm_request_events_purpose ON llm_request_events(purpose);
CREATE INDEX IF NOT EXISTS idx_llm_request_events_model ON llm_request_events(model);
CREATE INDEX IF NOT EXISTS idx_llm_request_events_timestamp ON llm_request_events(timestamp_ms);
`

// Store owns the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns the request event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &sqlEventRepo{db: s.db}
}

// DefaultDBPath returns $XDG_DATA_HOME/mathcoach/mathcoach.db (or the
// ~/.local/share equivalent), creating the directory if needed.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHCOACH_DB"); p != "" {
		return p, EnsureDir(p)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(dataHome, "mathcoach", "mathcoach.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
