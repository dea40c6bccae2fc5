package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Source produces the catalog at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

type SourceKind string

const (
	SourceEmbedded SourceKind = "embedded"
	SourceFile     SourceKind = "file"
	SourceSQL      SourceKind = "sql"
)

type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) (*Catalog, error) { return Default() }

type FileSource struct {
	Path string
}

func (s FileSource) Load(context.Context) (*Catalog, error) { return LoadFile(s.Path) }

// NewSource picks a source by kind. db is only used for SourceSQL.
func NewSource(kind SourceKind, path string, db *sql.DB) (Source, error) {
	switch kind {
	case "", SourceEmbedded:
		return EmbeddedSource{}, nil
	case SourceFile:
		if path == "" {
			return nil, fmt.Errorf("catalog source %q needs a path", kind)
		}
		return FileSource{Path: path}, nil
	case SourceSQL:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs a database", kind)
		}
		return NewSQLStore(db), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", kind)
	}
}
