package table

import (
	"fmt"

	"github.com/viant/bintly"
)

const codecVersion = 1

// EncodeBinary writes the table columns in table order.
func (t *Table) EncodeBinary(stream *bintly.Writer) error {
	stream.Uint8(codecVersion)
	stream.Strings(t.DocID)
	stream.Ints(t.TokIdx)
	stream.Ints(t.SentIdx)
	stream.Strings(t.Text)
	stream.Strings(t.Token)
	encodeCategorical(stream, t.Pos)
	encodeCategorical(stream, t.EntIOB)
	stream.Ints(t.EntIdx)
	encodeCategorical(stream, t.EntType)
	stream.Ints(t.NounPhrase)
	return nil
}

// DecodeBinary reads a table written by EncodeBinary.
func (t *Table) DecodeBinary(stream *bintly.Reader) error {
	var version uint8
	stream.Uint8(&version)
	if version != codecVersion {
		return fmt.Errorf("unsupported table version %d", version)
	}

	stream.Strings(&t.DocID)
	stream.Ints(&t.TokIdx)
	stream.Ints(&t.SentIdx)
	stream.Strings(&t.Text)
	stream.Strings(&t.Token)
	t.Pos = decodeCategorical(stream)
	t.EntIOB = decodeCategorical(stream)
	stream.Ints(&t.EntIdx)
	t.EntType = decodeCategorical(stream)
	stream.Ints(&t.NounPhrase)

	return t.validate()
}

// Encode serializes t.
func Encode(t *Table) ([]byte, error) {
	return bintly.Encode(t)
}

// Decode deserializes a table. Truncated or corrupt data is an error.
func Decode(data []byte) (t *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("corrupt table data (%d bytes): %v", len(data), r)
		}
	}()

	t = &Table{}
	if err := bintly.Decode(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

func encodeCategorical(stream *bintly.Writer, c *Categorical) {
	stream.Strings(c.Levels)
	stream.Uint32s(c.Codes)
}

func decodeCategorical(stream *bintly.Reader) *Categorical {
	c := &Categorical{}
	stream.Strings(&c.Levels)
	stream.Uint32s(&c.Codes)
	return c
}

func (t *Table) validate() error {
	n := len(t.DocID)
	for name, l := range map[string]int{
		"tok_idx":     len(t.TokIdx),
		"sent_idx":    len(t.SentIdx),
		"text":        len(t.Text),
		"token":       len(t.Token),
		"pos":         t.Pos.Len(),
		"ent_iob":     t.EntIOB.Len(),
		"ent_idx":     len(t.EntIdx),
		"ent_type":    t.EntType.Len(),
		"noun_phrase": len(t.NounPhrase),
	} {
		if l != n {
			return fmt.Errorf("column %s has %d rows, want %d", name, l, n)
		}
	}

	for name, c := range map[string]*Categorical{"pos": t.Pos, "ent_iob": t.EntIOB, "ent_type": t.EntType} {
		if err := c.validate(); err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
	}

	return nil
}
