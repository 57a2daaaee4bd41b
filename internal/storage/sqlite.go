package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// blobSchema holds the two persisted blobs in a single key/value table.
const blobSchema = `
CREATE TABLE IF NOT EXISTS blobs (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteMedium stores blobs in a washlog.db key/value table.
type SQLiteMedium struct {
	db *sql.DB
}

// OpenSQLiteMedium opens (or creates) washlog.db in dir and ensures the
// blob table exists.
func OpenSQLiteMedium(dir string) (*SQLiteMedium, error) {
	dbPath := filepath.Join(dir, "washlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.Exec(blobSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &SQLiteMedium{db: db}, nil
}

// ReadBlob returns the value stored under key. A missing row is not an
// error.
func (m *SQLiteMedium) ReadBlob(key string) (string, bool, error) {
	var value string
	err := m.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return value, true, nil
}

// WriteBlob upserts the value stored under key.
func (m *SQLiteMedium) WriteBlob(key, value string) error {
	_, err := m.db.Exec(
		"INSERT INTO blobs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}

// Close closes the database. Idempotent.
func (m *SQLiteMedium) Close() error {
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
