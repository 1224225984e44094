package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/storage"
	"github.com/revelaction/nlpcorpus/storage/filesystem"
	"github.com/revelaction/nlpcorpus/storage/sqlite/zombiezen"
)

// sources opens document sources and keeps one SQLite pool per database
// until Close.
type sources struct {
	pools map[string]*sqlitex.Pool
}

func newSources() *sources {
	return &sources{pools: map[string]*sqlitex.Pool{}}
}

// Open returns the document reader of path: a SQLite database for .db
// files, a JSON-lines file otherwise.
func (s *sources) Open(path string) (storage.DocReader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: source not found: %s", nlperr.ErrInputRead, path)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: source is a directory: %s", nlperr.ErrInputRead, path)
	}

	if filepath.Ext(path) != zombiezen.Ext {
		return filesystem.NewDocStore(path), nil
	}

	pool, ok := s.pools[path]
	if !ok {
		pool, err = zombiezen.NewPool(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", nlperr.ErrInputRead, err)
		}
		s.pools[path] = pool
	}

	return zombiezen.NewDocStore(pool), nil
}

func (s *sources) Close() error {
	var errs []error
	for path, pool := range s.pools {
		if err := pool.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", path, err))
		}
		delete(s.pools, path)
	}

	return errors.Join(errs...)
}
