package render

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/revelaction/nlpcorpus/token"
)

// JSONRenderer writes token rows as JSON lines to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes one JSON object per row.
func (r *JSONRenderer) Render(rows []token.Row) error {
	enc := sonic.ConfigDefault.NewEncoder(r.W)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
