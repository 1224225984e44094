package corpus

import (
	"fmt"
	"strings"
)

// Document is a raw document of the source table. Missing text fields are
// empty strings.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Text        string `json:"text"`
}

// Unit returns the annotation unit of the document: the non-empty fields
// title, description and text, in that order, joined by newlines.
func (d Document) Unit() string {
	parts := make([]string, 0, 3)
	for _, f := range []string{d.Title, d.Description, d.Text} {
		if f != "" {
			parts = append(parts, f)
		}
	}

	return strings.Join(parts, "\n")
}

// Range is a half-open row offset range [Start, Stop). A nil Stop means
// "up to the last row".
type Range struct {
	Start int
	Stop  *int
}

// NewRange returns a range with an explicit stop.
func NewRange(start, stop int) Range {
	return Range{Start: start, Stop: &stop}
}

// IsSet reports whether the range has a nonzero start or stop. A zero
// Stop is not set for naming purposes but still selects no rows.
func (r Range) IsSet() bool {
	return r.Start != 0 || (r.Stop != nil && *r.Stop != 0)
}

// Bounds returns the clamped [lo, hi) offsets of the range over total rows.
func (r Range) Bounds(total int) (int, int) {
	lo := clamp(r.Start, total)
	hi := total
	if r.Stop != nil {
		hi = clamp(*r.Stop, total)
	}

	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// Apply returns the documents of the range. It never fails: offsets outside
// the table are clamped.
func (r Range) Apply(docs []Document) []Document {
	lo, hi := r.Bounds(len(docs))
	return docs[lo:hi]
}

// Suffix returns the output file suffix of a run over this range: "_nlp"
// for a full run, "_<start>_<stop-1>_nlp" for a sliced one. When Stop is nil
// the effective stop is total.
func (r Range) Suffix(total int) string {
	if !r.IsSet() {
		return "_nlp"
	}

	stop := total
	if r.Stop != nil {
		stop = *r.Stop
	}

	return fmt.Sprintf("_%d_%d_nlp", r.Start, stop-1)
}

func (r Range) String() string {
	if !r.IsSet() {
		return ""
	}

	if r.Stop == nil {
		return fmt.Sprintf("[%d:]", r.Start)
	}

	return fmt.Sprintf("[%d:%d]", r.Start, *r.Stop)
}

func clamp(v, total int) int {
	if v < 0 {
		v += total
		if v < 0 {
			return 0
		}
	}

	if v > total {
		return total
	}

	return v
}
