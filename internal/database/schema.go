package database

import (
	"database/sql"
	"fmt"
)

// Schema statements, applied in order on startup. All statements are
// idempotent so repeated starts are safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS drawings (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		geometry TEXT NOT NULL,
		stroke_color TEXT,
		fill_color TEXT,
		radius REAL,
		label TEXT,
		position INTEGER NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS sites (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		type TEXT NOT NULL,
		lat REAL,
		lng REAL,
		risk_level TEXT,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS crisis (
		id TEXT PRIMARY KEY,
		is_active INTEGER NOT NULL,
		title TEXT,
		type TEXT,
		level TEXT NOT NULL,
		address TEXT,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		radius REAL NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sites_type ON sites(type)`,
	`CREATE INDEX IF NOT EXISTS idx_drawings_position ON drawings(position)`,
}

// Migrate applies the schema to the database
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
