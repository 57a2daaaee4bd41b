package types

import "errors"

// Blob keys in the storage medium. The persisted layout is exactly two
// keyed JSON blobs: a vehicle array under "cars" and a vehicle-id to
// entry-list object under "washEntries".
const (
	BlobVehicles = "cars"
	BlobEntries  = "washEntries"
)

// Store lifecycle and persistence errors.
var (
	ErrStoreClosed        = errors.New("store is closed")
	ErrCorruptStore       = errors.New("persisted blob failed to parse")
	ErrStorageUnavailable = errors.New("storage medium write failed")
)
