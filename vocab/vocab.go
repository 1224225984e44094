package vocab

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/bintly"

	"github.com/revelaction/nlpcorpus/nlperr"
)

const (
	// SnapshotName is the file name of the snapshot inside the cache directory.
	SnapshotName = "strings.bin"

	snapshotVersion = 1
)

// hashKey is fixed so that keys are stable across runs and machines.
var hashKey = []byte("nlpcorpus-vocabulary-string-key!")

// Store is the vocabulary: every string the pipeline emitted, keyed by a
// stable 64-bit hash, in insertion order. The empty string has key 0.
// A Store is not safe for concurrent use.
type Store struct {
	strs  []string
	index map[uint64]int
}

// New returns an empty store.
func New() *Store {
	return &Store{index: map[uint64]int{}}
}

// Key returns the key of s without interning it.
func Key(s string) uint64 {
	if s == "" {
		return 0
	}
	return highwayhash.Sum64([]byte(s), hashKey)
}

// Add interns s and returns its key.
func (s *Store) Add(v string) uint64 {
	k := Key(v)
	if k == 0 {
		return 0
	}

	if _, ok := s.index[k]; !ok {
		s.index[k] = len(s.strs)
		s.strs = append(s.strs, v)
	}

	return k
}

// Get returns the string interned under key.
func (s *Store) Get(key uint64) (string, bool) {
	if key == 0 {
		return "", true
	}

	i, ok := s.index[key]
	if !ok {
		return "", false
	}

	return s.strs[i], true
}

func (s *Store) Contains(v string) bool {
	_, ok := s.Get(Key(v))
	return ok
}

func (s *Store) Len() int {
	return len(s.strs)
}

// Strings returns the interned strings in insertion order.
func (s *Store) Strings() []string {
	return s.strs
}

// EncodeBinary writes the snapshot.
func (s *Store) EncodeBinary(stream *bintly.Writer) error {
	stream.Uint8(snapshotVersion)
	stream.Strings(s.strs)
	return nil
}

// DecodeBinary restores a snapshot, replacing the store content.
func (s *Store) DecodeBinary(stream *bintly.Reader) error {
	var version uint8
	stream.Uint8(&version)
	if version != snapshotVersion {
		return fmt.Errorf("unsupported vocabulary snapshot version %d", version)
	}

	var strs []string
	stream.Strings(&strs)

	s.strs = nil
	s.index = make(map[uint64]int, len(strs))
	for _, v := range strs {
		s.Add(v)
	}

	return nil
}

// Load restores the snapshot found in dir. A missing snapshot yields an
// empty store.
func Load(ctx context.Context, dir string) (*Store, error) {
	fs := afs.New()
	s := New()

	URL := url.Join(dir, SnapshotName)
	if ok, _ := fs.Exists(ctx, URL); !ok {
		return s, nil
	}

	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: vocabulary %s: %w", nlperr.ErrResourceLoad, URL, err)
	}

	if err := decode(data, s); err != nil {
		return nil, fmt.Errorf("%w: vocabulary %s: %w", nlperr.ErrResourceLoad, URL, err)
	}

	return s, nil
}

func decode(data []byte, s *Store) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupt snapshot (%d bytes): %v", len(data), r)
		}
	}()

	return bintly.Decode(data, s)
}

// Save writes the snapshot to dir, creating it when absent, and returns the
// snapshot location.
func (s *Store) Save(ctx context.Context, dir string) (string, error) {
	fs := afs.New()

	if ok, _ := fs.Exists(ctx, dir); !ok {
		if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
			return "", fmt.Errorf("%w: create %s: %w", nlperr.ErrPersist, dir, err)
		}
	}

	data, err := bintly.Encode(s)
	if err != nil {
		return "", fmt.Errorf("%w: encode vocabulary: %w", nlperr.ErrPersist, err)
	}

	URL := url.Join(dir, SnapshotName)
	// afs keeps the destination name only when the extensions match
	tmp := url.Join(dir, "tmp_"+SnapshotName)
	if err := fs.Upload(ctx, tmp, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", nlperr.ErrPersist, tmp, err)
	}

	// the previous snapshot stays in place until the new one is complete
	if err := fs.Move(ctx, tmp, URL); err != nil {
		if derr := fs.Delete(ctx, tmp); derr != nil {
			err = errors.Join(err, derr)
		}
		return "", fmt.Errorf("%w: replace %s: %w", nlperr.ErrPersist, URL, err)
	}

	return URL, nil
}
