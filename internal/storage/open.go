package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	KindSQLite = "sqlite"
	KindFile   = "file"
	KindMemory = "memory"
)

// Open picks a backend by kind. dir is the state directory; the SQLite
// backend keeps its database file there.
func Open(kind, dir string, log zerolog.Logger) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindSQLite:
		return OpenSQLite(filepath.Join(dir, "levelup.db"))
	case KindFile:
		return OpenFileBackend(dir, log)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}
