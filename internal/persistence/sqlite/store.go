// Package sqlite implements the durable key-value document store behind the
// persistence repositories. Each collection is one row in a documents
// table, serialized as JSON, written whole on every mutation and loaded
// whole on read. That is the same granularity the browser-era releases used.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	_ "modernc.org/sqlite"
)

// Document keys. One durable entry per collection.
const (
	keyAccounts     = "users-by-email"
	keySession      = "current-session"
	keyPrograms     = "programs"
	keyProfile      = "profile-mirror"
	keyTheme        = "theme-preference"
	keyCalendar     = "calendar-events"
	keyAppointments = "appointments"
	keyReminders    = "reminders"
)

// Store manages the SQLite connection holding the document table. A single
// mutex serializes writes; there is one logical writer and last-write-wins
// across collections is accepted.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the store at the given DSN.
func Open(dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// The document table is touched by every request; a single connection
	// sidesteps SQLITE_BUSY churn for this write pattern.
	db.SetMaxOpenConns(1)

	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the document table when absent.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store is not open")
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS documents (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Ping tests the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// loadValue reads and decodes the document stored under key. It reports
// found=false both when the key is absent and when the stored value fails
// to decode: corrupt data must behave exactly like missing data, so
// startup never breaks on a damaged store. Corruption is logged.
func (s *Store) loadValue(ctx context.Context, key string, out any) (bool, error) {
	if s == nil || s.db == nil {
		return false, fmt.Errorf("store is not open")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.WarnContext(ctx, "discarding unparsable stored document", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// storeValue encodes and upserts the document under key.
func (s *Store) storeValue(ctx context.Context, key string, value any) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store is not open")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	const upsert = `
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, upsert, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

// deleteValue removes the document under key. Missing keys are not an error.
func (s *Store) deleteValue(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store is not open")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
