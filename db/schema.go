// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates the high score table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, table string) error {
	if !validTableName(table) {
		return fmt.Errorf("invalid table name %q", table)
	}

	_, err := db.Exec(strings.ReplaceAll(schema, "{table}", table))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Table names come from config and are spliced into DDL, so keep them plain
func validTableName(name string) bool {
	if name == "" || len(name) > 63 {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Works on both PostgreSQL and SQLite
const schema = `
-- High scores, one row per gotchi
CREATE TABLE IF NOT EXISTS {table} (
    token_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    score DOUBLE PRECISION NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_{table}_score ON {table}(score);
`
