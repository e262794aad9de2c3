// Package recent persists picked emoji so frequently used glyphs can
// be surfaced again.
package recent

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/runger/emopick/internal/emoji"
)

// Pick is one recorded selection.
type Pick struct {
	Glyph    string
	ID       string
	Count    int
	LastPick time.Time
}

// Store records picks in SQLite.
type Store struct {
	db        *sql.DB
	closeOnce sync.Once
	closeErr  error
}

// Open opens (or creates) the store at dbPath. The database is opened
// with WAL mode and a single writer connection.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// modernc.org/sqlite uses _pragma=name(value) syntax
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite handles concurrency better with single writer
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection. Safe to call multiple times.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if s.db != nil {
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			s.closeErr = s.db.Close()
		}
	})
	return s.closeErr
}

// Record upserts a pick: the count increments and the timestamp moves
// forward. Unsupported entries are never recorded.
func (s *Store) Record(ctx context.Context, e emoji.Entry) error {
	if !e.Supported {
		return fmt.Errorf("refusing to record unsupported emoji %q", e.ID)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO picks (emoji_id, glyph, pick_count, last_pick_unix_ms)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(emoji_id) DO UPDATE SET
		  pick_count = pick_count + 1,
		  last_pick_unix_ms = excluded.last_pick_unix_ms
	`, e.ID, e.Glyph, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("record pick: %w", err)
	}
	return nil
}

// Top returns up to n picks ordered by count, then recency.
func (s *Store) Top(ctx context.Context, n int) ([]Pick, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT emoji_id, glyph, pick_count, last_pick_unix_ms
		FROM picks
		ORDER BY pick_count DESC, last_pick_unix_ms DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query picks: %w", err)
	}
	defer rows.Close()

	var picks []Pick
	for rows.Next() {
		var p Pick
		var ms int64
		if err := rows.Scan(&p.ID, &p.Glyph, &p.Count, &ms); err != nil {
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		p.LastPick = time.UnixMilli(ms)
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

// Prune drops the oldest rows beyond maxEntries. A maxEntries of 0
// disables pruning.
func (s *Store) Prune(ctx context.Context, maxEntries int) error {
	if maxEntries <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM picks WHERE emoji_id NOT IN (
		  SELECT emoji_id FROM picks
		  ORDER BY pick_count DESC, last_pick_unix_ms DESC
		  LIMIT ?
		)
	`, maxEntries)
	if err != nil {
		return fmt.Errorf("prune picks: %w", err)
	}
	return nil
}

// migrate runs database migrations to ensure the schema is up to date.
func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaV1)
	if err != nil {
		return fmt.Errorf("migration v1 failed: %w", err)
	}
	return nil
}

const schemaV1 = `
CREATE TABLE IF NOT EXISTS picks (
  emoji_id TEXT PRIMARY KEY,
  glyph TEXT NOT NULL,
  pick_count INTEGER NOT NULL DEFAULT 0,
  last_pick_unix_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_picks_rank ON picks(pick_count DESC, last_pick_unix_ms DESC);
`
