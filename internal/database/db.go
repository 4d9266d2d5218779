// Package database is the optional sqlite archive of merged datasets,
// letting repeated analysis runs and the viewer skip re-parsing the
// capture directory.
package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps sql.DB with archive-specific methods.
type DB struct {
	*sql.DB
}

// New opens (or creates) the archive database.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables.
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS datasets (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        key TEXT NOT NULL UNIQUE,
        archived_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS dataset_ips (
        dataset_id INTEGER NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
        ip TEXT NOT NULL,
        PRIMARY KEY (dataset_id, ip)
    );

    CREATE TABLE IF NOT EXISTS samples (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        dataset_id INTEGER NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
        ts_ms INTEGER NOT NULL,
        rtt_ms REAL NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_samples_dataset_ts ON samples(dataset_id, ts_ms);
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}
