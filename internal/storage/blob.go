package storage

import (
	"errors"
	"io"
)

var ErrNotFound = errors.New("asset not found")

// AssetStore serves the dashboard's static images. Assets are opaque blobs.
type AssetStore interface {
	Open(key string) (io.ReadCloser, error)
	URL(key string) string // path under which the HTTP layer serves key
}
