// Package sqlite provides a SQLite-backed progress store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rlacademy/rl-academy/internal/progress"
	_ "modernc.org/sqlite"
)

// ErrEmptyNamespace indicates a store created without a namespace.
var ErrEmptyNamespace = errors.New("sqlite storage: namespace cannot be empty")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS progress (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 1,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

var _ progress.Store = (*SQLiteStorage)(nil)

// SQLiteStorage persists ledger entries for one namespace.
// Rows are kept in insertion order through rowid.
type SQLiteStorage struct {
	db        *sql.DB
	namespace string
}

// NewSQLiteStorage opens (creating if needed) the database at dbPath.
func NewSQLiteStorage(dbPath, namespace string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}
	if strings.TrimSpace(namespace) == "" {
		return nil, ErrEmptyNamespace
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}
	// One connection keeps BEGIN IMMEDIATE and the statements on the same conn.
	db.SetMaxOpenConns(1)

	s := &SQLiteStorage{db: db, namespace: namespace}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the namespace's entries in insertion order.
func (s *SQLiteStorage) Load() ([]progress.Entry, error) {
	return s.load(context.Background(), s.db)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *SQLiteStorage) load(ctx context.Context, q querier) ([]progress.Entry, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT key, completed FROM progress WHERE namespace = ? ORDER BY rowid", s.namespace)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: load progress: %w", err)
	}
	defer rows.Close()

	var entries []progress.Entry
	for rows.Next() {
		var e progress.Entry
		if err := rows.Scan(&e.Key, &e.Completed); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan progress: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: load progress: %w", err)
	}
	return entries, nil
}

// Update rewrites the namespace inside a single write transaction.
func (s *SQLiteStorage) Update(fn func(current []progress.Entry) []progress.Entry) (err error) {
	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("sqlite storage: acquire connection: %w", err)
	}
	defer conn.Close()

	// IMMEDIATE takes the write lock before reading, so no writer slips in between.
	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("sqlite storage: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_, _ = conn.ExecContext(ctx, "ROLLBACK")
		}
	}()

	current, err := s.load(ctx, conn)
	if err != nil {
		return err
	}
	next := fn(current)

	if _, err = conn.ExecContext(ctx, "DELETE FROM progress WHERE namespace = ?", s.namespace); err != nil {
		return fmt.Errorf("sqlite storage: clear progress: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range next {
		_, err = conn.ExecContext(ctx,
			"INSERT INTO progress (namespace, key, completed, updated_at) VALUES (?, ?, ?, ?)",
			s.namespace, e.Key, e.Completed, now)
		if err != nil {
			return fmt.Errorf("sqlite storage: save %q: %w", e.Key, err)
		}
	}
	if _, err = conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("sqlite storage: commit: %w", err)
	}
	return nil
}
