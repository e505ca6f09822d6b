package store

import (
	"fmt"
	"path/filepath"
	"time"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backend is a single-key durable slot plus housekeeping.
type Backend interface {
	Read() ([]byte, bool, error)
	Write(data []byte) error
	UpdatedAt() (time.Time, bool, error)
	Close() error
}

// Backends lists the valid backend names.
var Backends = []string{BackendSQLite, BackendFile, BackendMemory}

// Open opens the named backend rooted at dataDir, storing the value under key.
func Open(kind, dataDir, key string) (Backend, error) {
	switch kind {
	case BackendSQLite, "":
		return OpenSQLite(filepath.Join(dataDir, "deeday.db"), key)
	case BackendFile:
		return NewFile(filepath.Join(dataDir, key+".json")), nil
	case BackendMemory:
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want one of %v)", kind, Backends)
	}
}
