// Package storage implements the persistence layer for washlog: keyed
// text-blob storage media (file and SQLite backed) and the JSON codec
// that normalizes records on the way in and out.
package storage

import (
	"fmt"
	"os"

	"github.com/mesh-intelligence/washlog/pkg/types"
)

// Medium is a keyed text-blob store. The codec reads and writes whole
// blobs; there are no partial or incremental writes.
type Medium interface {
	// ReadBlob returns the blob stored under key. The second return is
	// false when no blob exists for the key, which is not an error.
	ReadBlob(key string) (string, bool, error)

	// WriteBlob stores value under key, overwriting prior content.
	WriteBlob(key, value string) error

	// Close releases medium resources. Idempotent.
	Close() error
}

// OpenMedium creates the DataDir if needed and opens the medium named by
// the config.
func OpenMedium(config types.Config) (Medium, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	switch config.Backend {
	case types.BackendFile:
		return NewFileMedium(dataDir), nil
	case types.BackendSQLite:
		return OpenSQLiteMedium(dataDir)
	default:
		return nil, types.ErrBackendUnknown
	}
}
