package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FSStore is a read-only AssetStore rooted at a directory.
type FSStore struct {
	base   string
	prefix string
}

func NewFSStore(base, prefix string) (*FSStore, error) {
	if base == "" {
		base = "./public"
	}
	if prefix == "" {
		prefix = "/assets"
	}
	if fi, err := os.Stat(base); err == nil && !fi.IsDir() {
		return nil, fmt.Errorf("asset dir %s: not a directory", base)
	}
	return &FSStore{base: base, prefix: strings.TrimSuffix(prefix, "/")}, nil
}

// clean maps a key onto a path that cannot leave the root.
func clean(key string) string {
	return strings.TrimPrefix(path.Clean("/"+key), "/")
}

func (s *FSStore) Open(key string) (io.ReadCloser, error) {
	k := clean(key)
	if k == "" {
		return nil, ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.base, filepath.FromSlash(k)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
		}
		return nil, err
	}
	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
	}
	return f, nil
}

func (s *FSStore) URL(key string) string {
	u := url.URL{Path: s.prefix + "/" + clean(key)}
	return u.EscapedPath()
}
