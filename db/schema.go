// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeMemory   = "memory"
)

var ErrUnsupportedType = errors.New("unsupported database type")

// Open connects to a SQL database and verifies the connection.
// dbType is TypeSQLite or TypePostgres.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; :memory: databases exist per connection
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Scores are not range-checked here; the vote store accepts what it is given.
const schema = `
-- Votes: one row per participant, last write wins
CREATE TABLE IF NOT EXISTS vote (
    participant_id TEXT PRIMARY KEY,
    jury_code TEXT NOT NULL,
    originality REAL NOT NULL,
    interaction REAL NOT NULL,
    total REAL NOT NULL,
    submitted_at TEXT NOT NULL,
    first_saved_ns BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_jury_code ON vote(jury_code);

-- Jury panels
CREATE TABLE IF NOT EXISTS jury (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`
