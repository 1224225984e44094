package storage

import (
	"context"

	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/table"
)

// DocReader defines read operations for a document source
type DocReader interface {
	// ReadDocs returns the documents of the range, in source order, and the
	// total number of documents of the source.
	ReadDocs(ctx context.Context, r corpus.Range) ([]corpus.Document, int, error)
}

// TableWriter defines write operations for token tables
type TableWriter interface {
	// WriteTable persists the table under name and returns its location.
	WriteTable(ctx context.Context, name string, t *table.Table) (string, error)
}

// TableReader defines read operations for token tables
type TableReader interface {
	// ReadTable returns the table stored under name.
	ReadTable(ctx context.Context, name string) (*table.Table, error)
}

// TableRepository combines read and write operations
type TableRepository interface {
	TableReader
	TableWriter
}
