// Package table assembles the per-token records of a batch into the final
// columnar token table.
package table

import (
	"slices"

	"github.com/revelaction/nlpcorpus/token"
)

// Table is the token table, one slice per column in the order of
// token.Columns. Part-of-speech, entity IOB and entity type are categorical.
type Table struct {
	DocID      []string
	TokIdx     []int
	SentIdx    []int
	Text       []string
	Token      []string
	Pos        *Categorical
	EntIOB     *Categorical
	EntIdx     []int
	EntType    *Categorical
	NounPhrase []int
}

// Empty returns a table without rows.
func Empty() *Table {
	return &Table{
		Pos:     NewCategorical(nil),
		EntIOB:  NewCategorical(nil),
		EntType: NewCategorical(nil),
	}
}

// Assemble builds the token table of a batch. Sentence and entity indices
// run over the whole batch, in record order.
func Assemble(records []token.Record) *Table {
	n := len(records)
	t := &Table{
		DocID:      make([]string, n),
		TokIdx:     make([]int, n),
		SentIdx:    make([]int, n),
		Text:       make([]string, n),
		Token:      make([]string, n),
		EntIdx:     make([]int, n),
		NounPhrase: make([]int, n),
	}

	pos := make([]string, n)
	iob := make([]string, n)
	typ := make([]string, n)

	for i, r := range records {
		t.DocID[i] = r.DocID
		t.TokIdx[i] = r.Index
		t.Text[i] = r.Text
		t.NounPhrase[i] = r.NounPhrase
		t.Token[i] = r.Resolved()

		pos[i] = r.Pos
		iob[i] = string(token.ParseIOB(string(r.EntIOB)))
		typ[i] = r.EntType
	}

	for i := range pos {
		if token.IsPunct(t.Token[i]) {
			pos[i] = token.PunctTag
		}
	}

	sent := 0
	for i, r := range records {
		if r.SentStart {
			sent++
		}
		t.SentIdx[i] = sent
	}

	ent := 0
	for i := range iob {
		if token.IOB(iob[i]) == token.Begin {
			ent++
		}
		t.EntIdx[i] = ent
	}
	for i := range iob {
		if token.IOB(iob[i]) == token.Outside {
			t.EntIdx[i] = 0
		}
	}

	t.Pos = NewCategorical(pos)
	t.EntIOB = NewCategorical(iob)
	t.EntType = NewCategorical(typ)

	return t
}

// FromRows builds a table from rows already carrying their indices.
func FromRows(rows []token.Row) *Table {
	n := len(rows)
	t := &Table{
		DocID:      make([]string, n),
		TokIdx:     make([]int, n),
		SentIdx:    make([]int, n),
		Text:       make([]string, n),
		Token:      make([]string, n),
		EntIdx:     make([]int, n),
		NounPhrase: make([]int, n),
	}

	pos := make([]string, n)
	iob := make([]string, n)
	typ := make([]string, n)
	for i, r := range rows {
		t.DocID[i] = r.DocID
		t.TokIdx[i] = r.Index
		t.SentIdx[i] = r.SentIndex
		t.Text[i] = r.Text
		t.Token[i] = r.Token
		t.EntIdx[i] = r.EntIndex
		t.NounPhrase[i] = r.NounPhrase
		pos[i] = r.Pos
		iob[i] = string(r.EntIOB)
		typ[i] = r.EntType
	}

	t.Pos = NewCategorical(pos)
	t.EntIOB = NewCategorical(iob)
	t.EntType = NewCategorical(typ)

	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.DocID)
}

// Row returns row i.
func (t *Table) Row(i int) token.Row {
	return token.Row{
		DocID:      t.DocID[i],
		Index:      t.TokIdx[i],
		SentIndex:  t.SentIdx[i],
		Text:       t.Text[i],
		Token:      t.Token[i],
		Pos:        t.Pos.Value(i),
		EntIOB:     token.IOB(t.EntIOB.Value(i)),
		EntIndex:   t.EntIdx[i],
		EntType:    t.EntType.Value(i),
		NounPhrase: t.NounPhrase[i],
	}
}

// Rows returns all rows in table order.
func (t *Table) Rows() []token.Row {
	rows := make([]token.Row, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Head returns the first n rows, all of them when n < 0.
func (t *Table) Head(n int) []token.Row {
	if n < 0 || n > t.Len() {
		n = t.Len()
	}

	rows := make([]token.Row, n)
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Docs returns the distinct document ids in order of appearance.
func (t *Table) Docs() []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, id := range t.DocID {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Doc returns the rows of document id.
func (t *Table) Doc(id string) []token.Row {
	var rows []token.Row
	for i, d := range t.DocID {
		if d == id {
			rows = append(rows, t.Row(i))
		}
	}
	return rows
}

// Equal reports whether both tables hold the same columns.
func (t *Table) Equal(o *Table) bool {
	return slices.Equal(t.DocID, o.DocID) &&
		slices.Equal(t.TokIdx, o.TokIdx) &&
		slices.Equal(t.SentIdx, o.SentIdx) &&
		slices.Equal(t.Text, o.Text) &&
		slices.Equal(t.Token, o.Token) &&
		t.Pos.Equal(o.Pos) &&
		t.EntIOB.Equal(o.EntIOB) &&
		slices.Equal(t.EntIdx, o.EntIdx) &&
		t.EntType.Equal(o.EntType) &&
		slices.Equal(t.NounPhrase, o.NounPhrase)
}
