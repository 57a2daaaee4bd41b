// Package imaging reads user-selected image files off the caller's
// goroutine and encodes them as data URIs. The encoded blobs are opaque
// to the rest of the system; no validation or compression happens here.
package imaging

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// Result is the outcome of one ingestion: either a data URI or an error.
type Result struct {
	DataURI string
	Err     error
}

// Ingest reads the file at path on its own goroutine and delivers the
// encoded result on the returned channel. The channel is buffered, so
// an abandoned ingestion never blocks; its result is simply discarded.
// There is no cancellation of an in-flight read.
func Ingest(path string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		uri, err := ReadDataURI(path)
		ch <- Result{DataURI: uri, Err: err}
	}()
	return ch
}

// ReadDataURI reads the file at path and returns it as a base64 data
// URI. The media type comes from the file extension, falling back to
// content sniffing.
func ReadDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", path, err)
	}

	mediaType := mime.TypeByExtension(filepath.Ext(path))
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
