// Package sqlite implements the credential and resume repositories on a
// file-backed SQLite database via database/sql and the pure-Go
// modernc.org/sqlite driver (no cgo, cross-compiles cleanly).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to open the database.
type Config struct {
	// Path is the database file, or ":memory:" for tests.
	Path    string
	Timeout time.Duration
}

// Connect opens the database, verifies connectivity with a ping, and
// idempotently creates the schema. database/sql pools connections: each
// request borrows one for the duration of a query and the pool reclaims it on
// every exit path.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	// WAL lets concurrent request handlers read while a write is in flight;
	// the default journal mode locks the whole file.
	if _, err := db.ExecContext(pingCtx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite journal_mode: %w", err)
	}
	if _, err := db.ExecContext(pingCtx, "PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite foreign_keys: %w", err)
	}

	if err := createSchema(pingCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// createSchema creates the two tables when they are absent. CREATE TABLE IF
// NOT EXISTS keeps startup idempotent across restarts against the same file.
func createSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			skills     TEXT NOT NULL,
			experience INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create resumes table: %w", err)
	}

	return nil
}
