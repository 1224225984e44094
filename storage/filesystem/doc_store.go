package filesystem

import (
	"bufio"
	"bytes"
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/viant/afs"

	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/storage"
)

// maxLine is the longest document line accepted, in bytes.
const maxLine = 64 * 1024 * 1024

// DocStore reads documents from a JSON-lines file, one document object per
// line.
type DocStore struct {
	location string
	fs       afs.Service
}

var _ storage.DocReader = (*DocStore)(nil)

// NewDocStore creates a JSON-lines document source at location (a path or
// an afs URL).
func NewDocStore(location string) *DocStore {
	return &DocStore{location: location, fs: afs.New()}
}

func (s *DocStore) Location() string {
	return s.location
}

// ReadDocs reads the whole file and returns the documents of the range.
func (s *DocStore) ReadDocs(ctx context.Context, r corpus.Range) ([]corpus.Document, int, error) {
	docs, err := s.ReadAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return r.Apply(docs), len(docs), nil
}

// ReadAll returns every document of the file in order.
func (s *DocStore) ReadAll(ctx context.Context) ([]corpus.Document, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", nlperr.ErrInputRead, s.location, err)
	}

	docs, err := ParseDocs(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", nlperr.ErrInputRead, s.location, err)
	}

	return docs, nil
}

// ParseDocs decodes JSON-lines document data. Blank lines are skipped; a
// record without id is malformed.
func ParseDocs(data []byte) ([]corpus.Document, error) {
	var docs []corpus.Document

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}

		var doc corpus.Document
		if err := sonic.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if doc.ID == "" {
			return nil, fmt.Errorf("line %d: document without id", line)
		}

		docs = append(docs, doc)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}
