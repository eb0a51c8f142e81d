// Package store provides the SQLite-backed key-value blob store the
// ledger persists its snapshots into.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a key-value blob store over a single SQLite table.
type DB struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Load returns the blob stored under key, or (nil, nil) if the key has
// never been written.
func (d *DB) Load(key string) ([]byte, error) {
	var blob []byte
	err := d.db.QueryRow("SELECT blob FROM snapshots WHERE key = ?", key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return blob, nil
}

// Save writes the blob under key, replacing any previous value.
func (d *DB) Save(key string, blob []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := d.db.Exec(`INSERT OR REPLACE INTO snapshots (key, blob, updated_at)
		VALUES (?, ?, ?)`, key, blob, now)
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}
