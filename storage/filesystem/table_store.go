package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/storage"
	"github.com/revelaction/nlpcorpus/table"
)

// Ext is the file extension of binary token tables.
const Ext = ".tok"

// TableStore keeps token tables as binary files in one directory.
type TableStore struct {
	dir string
	fs  afs.Service
}

var _ storage.TableRepository = (*TableStore)(nil)

func NewTableStore(dir string) *TableStore {
	return &TableStore{dir: dir, fs: afs.New()}
}

// Location returns the file of table name.
func (s *TableStore) Location(name string) string {
	return url.Join(s.dir, name+Ext)
}

// WriteTable writes the table to a temporary file and moves it over any
// previous file. The directory is created when absent.
func (s *TableStore) WriteTable(ctx context.Context, name string, t *table.Table) (string, error) {
	if ok, _ := s.fs.Exists(ctx, s.dir); !ok {
		if err := s.fs.Create(ctx, s.dir, file.DefaultDirOsMode, true); err != nil {
			return "", fmt.Errorf("%w: create %s: %w", nlperr.ErrPersist, s.dir, err)
		}
	}

	data, err := table.Encode(t)
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %w", nlperr.ErrPersist, name, err)
	}

	URL := s.Location(name)
	// afs keeps the destination name only when the extensions match
	tmp := url.Join(s.dir, name+".tmp"+Ext)
	if err := s.fs.Upload(ctx, tmp, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", nlperr.ErrPersist, tmp, err)
	}

	if err := s.fs.Move(ctx, tmp, URL); err != nil {
		if derr := s.fs.Delete(ctx, tmp); derr != nil {
			err = errors.Join(err, derr)
		}
		return "", fmt.Errorf("%w: replace %s: %w", nlperr.ErrPersist, URL, err)
	}

	return URL, nil
}

// ReadTable reads table name.
func (s *TableStore) ReadTable(ctx context.Context, name string) (*table.Table, error) {
	URL := s.Location(name)
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", nlperr.ErrInputRead, URL, err)
	}

	t, err := table.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", nlperr.ErrInputRead, URL, err)
	}

	return t, nil
}
