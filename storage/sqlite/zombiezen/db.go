package zombiezen

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// Ext is the file extension of SQLite token tables and document sources.
const Ext = ".db"

// NewPool creates a connection pool on the database file, creating its
// directory when absent. sqlitex opens connections read-write with WAL
// enabled.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pool at %s: %w", dbPath, err)
	}
	return pool, nil
}
