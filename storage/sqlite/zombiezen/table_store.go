package zombiezen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/storage"
	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
)

// TableStore keeps each token table in its own database file of one
// directory.
type TableStore struct {
	dir string
}

var _ storage.TableRepository = (*TableStore)(nil)

func NewTableStore(dir string) *TableStore {
	return &TableStore{dir: dir}
}

// Location returns the database file of table name.
func (s *TableStore) Location(name string) string {
	return filepath.Join(s.dir, name+Ext)
}

// WriteTable replaces the tokens table of the database name with t. A
// failed write keeps the previous table.
func (s *TableStore) WriteTable(ctx context.Context, name string, t *table.Table) (string, error) {
	path := s.Location(name)

	pool, err := NewPool(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", nlperr.ErrPersist, err)
	}
	defer pool.Close()

	conn, err := pool.Take(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", nlperr.ErrPersist, err)
	}
	defer pool.Put(conn)

	if err := replaceTokens(conn, t); err != nil {
		return "", fmt.Errorf("%w: %s: %w", nlperr.ErrPersist, path, err)
	}

	return path, nil
}

func replaceTokens(conn *sqlite.Conn, t *table.Table) (err error) {
	defer sqlitex.Save(conn)(&err)

	if err := executeSchema(conn, TokensSchema); err != nil {
		return err
	}

	const q = `INSERT INTO tokens (row, doc, tok_idx, sent_idx, text, token, pos, ent_iob, ent_idx, ent_type, noun_phrase)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		err = sqlitex.Execute(conn, q, &sqlitex.ExecOptions{
			Args: []interface{}{i, r.DocID, r.Index, r.SentIndex, r.Text, r.Token, r.Pos, string(r.EntIOB), r.EntIndex, r.EntType, r.NounPhrase},
		})
		if err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	return nil
}

// ReadTable reads the tokens table of the database name. Categorical
// columns are rebuilt from their values.
func (s *TableStore) ReadTable(ctx context.Context, name string) (*table.Table, error) {
	path := s.Location(name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", nlperr.ErrInputRead, err)
	}

	pool, err := NewPool(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", nlperr.ErrInputRead, err)
	}
	defer pool.Close()

	conn, err := pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", nlperr.ErrInputRead, err)
	}
	defer pool.Put(conn)

	var rows []token.Row
	err = sqlitex.Execute(conn, "SELECT doc, tok_idx, sent_idx, text, token, pos, ent_iob, ent_idx, ent_type, noun_phrase FROM tokens ORDER BY row", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, token.Row{
				DocID:      stmt.ColumnText(0),
				Index:      stmt.ColumnInt(1),
				SentIndex:  stmt.ColumnInt(2),
				Text:       stmt.ColumnText(3),
				Token:      stmt.ColumnText(4),
				Pos:        stmt.ColumnText(5),
				EntIOB:     token.IOB(stmt.ColumnText(6)),
				EntIndex:   stmt.ColumnInt(7),
				EntType:    stmt.ColumnText(8),
				NounPhrase: stmt.ColumnInt(9),
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", nlperr.ErrInputRead, path, err)
	}

	return table.FromRows(rows), nil
}
