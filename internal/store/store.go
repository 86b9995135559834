// Package store persists user preferences and the history of committed
// picks in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// now is replaced in tests.
var now = time.Now

const defaultTimeout = 5 * time.Second

type Store struct {
	DB   *sql.DB
	path string
}

// Open creates the database file and its parent directory if needed, then
// applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s := &Store{DB: db, path: path}
	if err := s.withDBContext(ctx, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		return s.createTables(ctx)
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS picks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			date TEXT,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_picks_recorded_at ON picks(recorded_at);`,
	}
	for _, query := range queries {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return wrapErr(ResourceSchema, "create", "", err)
		}
	}
	return nil
}

// withDBContext bounds fn with the default timeout unless ctx already has a
// deadline.
func (s *Store) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}
	return fn(ctx)
}

func withDBContextResult[T any](s *Store, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := s.withDBContext(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}
