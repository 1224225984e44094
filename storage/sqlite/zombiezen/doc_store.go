package zombiezen

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/storage"
)

// DocStore reads documents from the documents table, in insertion order.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocReader = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

// ReadDocs returns the documents of the range. Only the rows of the range
// are loaded.
func (h *DocStore) ReadDocs(ctx context.Context, r corpus.Range) ([]corpus.Document, int, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", nlperr.ErrInputRead, err)
	}
	defer h.pool.Put(conn)

	total := 0
	err = sqlitex.Execute(conn, "SELECT COUNT(*) FROM documents", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			total = stmt.ColumnInt(0)
			return nil
		},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count documents: %w", nlperr.ErrInputRead, err)
	}

	lo, hi := r.Bounds(total)
	docs := make([]corpus.Document, 0, hi-lo)

	err = sqlitex.Execute(conn, "SELECT id, title, description, text FROM documents ORDER BY rowid LIMIT ? OFFSET ?", &sqlitex.ExecOptions{
		Args: []interface{}{hi - lo, lo},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := corpus.Document{
				ID:          stmt.ColumnText(0),
				Title:       stmt.ColumnText(1),
				Description: stmt.ColumnText(2),
				Text:        stmt.ColumnText(3),
			}
			if doc.ID == "" {
				return fmt.Errorf("row %d: document without id", lo+len(docs))
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read documents: %w", nlperr.ErrInputRead, err)
	}

	return docs, total, nil
}

// WriteDocs appends docs to the documents table in one transaction.
func (h *DocStore) WriteDocs(ctx context.Context, docs []corpus.Document) (err error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", nlperr.ErrPersist, err)
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, doc := range docs {
		err = sqlitex.Execute(conn, "INSERT INTO documents (id, title, description, text) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{doc.ID, doc.Title, doc.Description, doc.Text},
		})
		if err != nil {
			return fmt.Errorf("%w: failed to insert document %s: %w", nlperr.ErrPersist, doc.ID, err)
		}
	}

	return nil
}
