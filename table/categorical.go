package table

import (
	"fmt"
	"slices"
	"sort"
)

// Categorical is a string column stored as codes into sorted levels.
type Categorical struct {
	Levels []string
	Codes  []uint32
}

// NewCategorical encodes values.
func NewCategorical(values []string) *Categorical {
	seen := make(map[string]struct{})
	for _, v := range values {
		seen[v] = struct{}{}
	}

	levels := make([]string, 0, len(seen))
	for v := range seen {
		levels = append(levels, v)
	}
	sort.Strings(levels)

	index := make(map[string]uint32, len(levels))
	for i, l := range levels {
		index[l] = uint32(i)
	}

	codes := make([]uint32, len(values))
	for i, v := range values {
		codes[i] = index[v]
	}

	return &Categorical{Levels: levels, Codes: codes}
}

func (c *Categorical) Len() int {
	return len(c.Codes)
}

// Value returns the value of row i.
func (c *Categorical) Value(i int) string {
	return c.Levels[c.Codes[i]]
}

// Values decodes the column.
func (c *Categorical) Values() []string {
	out := make([]string, len(c.Codes))
	for i := range c.Codes {
		out[i] = c.Value(i)
	}
	return out
}

// Equal reports whether both columns hold the same levels and codes.
func (c *Categorical) Equal(o *Categorical) bool {
	return slices.Equal(c.Levels, o.Levels) && slices.Equal(c.Codes, o.Codes)
}

func (c *Categorical) validate() error {
	for i, code := range c.Codes {
		if int(code) >= len(c.Levels) {
			return fmt.Errorf("row %d: code %d out of %d levels", i, code, len(c.Levels))
		}
	}
	return nil
}
