// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store.go
// Summary: SQLite persistence for the last picked color and the recent-colors history.
//
// The history is ordered most-recent-first, holds at most one entry per hex
// value, and is trimmed to a configurable limit on every push.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/codetint/color"
)

// ErrNoLast is returned by Last when no color has been remembered yet.
var ErrNoLast = errors.New("store: no last color")

// DefaultHistoryLimit matches the popup's history size.
const DefaultHistoryLimit = 8

// Config holds configuration for the store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// HistoryLimit caps the number of history entries. Default: 8
	HistoryLimit int
}

// DefaultConfig returns the defaults for dbPath.
func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:       dbPath,
		HistoryLimit: DefaultHistoryLimit,
	}
}

// Store keeps the "last" record and the history list.
type Store struct {
	config Config
	db     *sql.DB
	mu     sync.Mutex
}

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

-- Single-row table holding the last picked or converted color
CREATE TABLE IF NOT EXISTS last_color (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    hex TEXT NOT NULL,
    r INTEGER NOT NULL,
    g INTEGER NOT NULL,
    b INTEGER NOT NULL,
    a INTEGER NOT NULL,
    updated_at INTEGER NOT NULL       -- UnixNano
);

-- Recent colors, one row per hex, newest has the highest seq
CREATE TABLE IF NOT EXISTS history (
    hex TEXT PRIMARY KEY,
    r INTEGER NOT NULL,
    g INTEGER NOT NULL,
    b INTEGER NOT NULL,
    a INTEGER NOT NULL,
    seq INTEGER NOT NULL,
    used_at INTEGER NOT NULL          -- UnixNano
);

CREATE INDEX IF NOT EXISTS idx_history_seq ON history(seq);
`

// Open opens (or creates) the store at dbPath with default settings.
func Open(dbPath string) (*Store, error) {
	return OpenWithConfig(DefaultConfig(dbPath))
}

// OpenWithConfig opens the store with a custom configuration.
func OpenWithConfig(config Config) (*Store, error) {
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = DefaultHistoryLimit
	}

	dir := filepath.Dir(config.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := config.DBPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema version: %w", err)
	}

	return &Store{config: config, db: db}, nil
}

func checkSchemaVersion(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if current == schemaVersion {
		return nil
	}
	log.Printf("[STORE] Migrating schema from version %d to %d", current, schemaVersion)
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
	return err
}

// HistoryLimit returns the configured history cap.
func (s *Store) HistoryLimit() int {
	return s.config.HistoryLimit
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetLast replaces the last color record.
func (s *Store) SetLast(ctx context.Context, c color.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return setLast(ctx, s.db, c)
}

// Last returns the last color record, or ErrNoLast.
func (s *Store) Last(ctx context.Context) (color.Color, error) {
	var c color.Color
	err := s.db.QueryRowContext(ctx,
		"SELECT hex, r, g, b, a FROM last_color WHERE id = 1").
		Scan(&c.Hex, &c.R, &c.G, &c.B, &c.A)
	if errors.Is(err, sql.ErrNoRows) {
		return color.Color{}, ErrNoLast
	}
	if err != nil {
		return color.Color{}, fmt.Errorf("failed to read last color: %w", err)
	}
	return c, nil
}

// Push moves c to the front of the history, dropping any entry with the same hex
// and trimming the list to the limit.
func (s *Store) Push(ctx context.Context, c color.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return push(ctx, tx, c, s.config.HistoryLimit)
	})
}

// Remember records c as the last color and pushes it onto the history atomically.
func (s *Store) Remember(ctx context.Context, c color.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := setLast(ctx, tx, c); err != nil {
			return err
		}
		return push(ctx, tx, c, s.config.HistoryLimit)
	})
}

// Import seeds the store with colors recorded elsewhere. history is newest
// first; it is pushed oldest first so the order survives, deduped and trimmed
// like any other push. A nil last leaves the last color untouched.
func (s *Store) Import(ctx context.Context, last *color.Color, history []color.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if last != nil {
			if err := setLast(ctx, tx, *last); err != nil {
				return err
			}
		}
		for i := len(history) - 1; i >= 0; i-- {
			if err := push(ctx, tx, history[i], s.config.HistoryLimit); err != nil {
				return err
			}
		}
		return nil
	})
}

// History returns the recent colors, newest first.
func (s *Store) History(ctx context.Context) ([]color.Color, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT hex, r, g, b, a FROM history ORDER BY seq DESC LIMIT ?", s.config.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []color.Color
	for rows.Next() {
		var c color.Color
		if err := rows.Scan(&c.Hex, &c.R, &c.G, &c.B, &c.A); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ClearHistory empties the history list. The last color is kept.
func (s *Store) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setLast(ctx context.Context, db execer, c color.Color) error {
	_, err := db.ExecContext(ctx,
		"INSERT OR REPLACE INTO last_color (id, hex, r, g, b, a, updated_at) VALUES (1, ?, ?, ?, ?, ?, ?)",
		c.Hex, c.R, c.G, c.B, c.A, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to write last color: %w", err)
	}
	return nil
}

func push(ctx context.Context, tx *sql.Tx, c color.Color, limit int) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM history WHERE hex = ?", c.Hex); err != nil {
		return fmt.Errorf("failed to dedupe history: %w", err)
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO history (hex, r, g, b, a, seq, used_at)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM history), ?)`,
		c.Hex, c.R, c.G, c.B, c.A, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"DELETE FROM history WHERE hex NOT IN (SELECT hex FROM history ORDER BY seq DESC LIMIT ?)", limit)
	if err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return nil
}
