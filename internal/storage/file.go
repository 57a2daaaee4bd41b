package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileMedium stores each blob as <key>.json in the data directory.
// Writes use the temp-file, fsync, rename pattern so a crash mid-write
// never leaves a half-written blob behind.
type FileMedium struct {
	dir string
}

// NewFileMedium returns a file-backed medium rooted at dir.
func NewFileMedium(dir string) *FileMedium {
	return &FileMedium{dir: dir}
}

func (m *FileMedium) blobPath(key string) string {
	return filepath.Join(m.dir, key+".json")
}

// ReadBlob reads the blob file for key. A missing file is not an error.
func (m *FileMedium) ReadBlob(key string) (string, bool, error) {
	data, err := os.ReadFile(m.blobPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// WriteBlob atomically replaces the blob file for key.
func (m *FileMedium) WriteBlob(key, value string) error {
	path := m.blobPath(key)
	tmp, err := os.CreateTemp(m.dir, ".blob-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op for the file medium.
func (m *FileMedium) Close() error {
	return nil
}
