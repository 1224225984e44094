package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/nlpcorpus/token"
)

const (
	Defaultformat = "text"
)

var (
	Purple    = "\033[1;34m"
	Magenta   = "\033[1;35m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// entity type -> color
var entityColors = map[string]string{
	"PER":    Yellow256,
	"PERSON": Yellow256,
	"LOC":    Green256,
	"ORG":    Teal,
	"MISC":   Magenta,
	"GPE":    Green256,
}

func SupportedFormats() []string {
	return []string{"text", "token", "pos"}
}

// Renderer prints the sentences of token rows.
type Renderer struct {
	HasColor bool

	HasPrefix bool

	// Format determines what is printed for every token
	//
	// text: the surface text
	// token: the resolved token (lemma)
	// pos: text/pos pairs
	Format string
}

func NewRenderer() *Renderer {
	return &Renderer{Format: Defaultformat}
}

// Sentences writes one line per sentence of rows. Entity tokens are colored
// by entity type.
func (r *Renderer) Sentences(w io.Writer, rows []token.Row) {
	for _, s := range Split(rows) {
		prefix := ""
		if r.HasPrefix {
			prefix = fmt.Sprintf("%s%4d%s ", Grey256, s[0].SentIndex, Off)
			if !r.HasColor {
				prefix = fmt.Sprintf("%4d ", s[0].SentIndex)
			}
		}

		fmt.Fprintf(w, "%s%s\n", prefix, r.SentenceString(s))
	}
}

// SentenceString returns the tokens of one sentence separated by spaces.
func (r *Renderer) SentenceString(s []token.Row) string {
	var str strings.Builder
	for i, row := range s {
		if i > 0 {
			str.WriteString(" ")
		}
		str.WriteString(r.colorToken(row))
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}

func (r *Renderer) word(row token.Row) string {
	switch r.Format {
	case "token":
		return row.Token
	case "pos":
		return row.Text + "/" + row.Pos
	}
	return row.Text
}

func (r *Renderer) colorToken(row token.Row) string {
	w := r.word(row)
	if !r.HasColor || row.EntIOB == token.Outside {
		return w
	}

	color, ok := entityColors[row.EntType]
	if !ok {
		color = Purple
	}

	return color + w + Off
}

// NextFormat cycles through the supported formats.
func (r *Renderer) NextFormat() {
	formats := SupportedFormats()
	for i, f := range formats {
		if f == r.Format {
			r.Format = formats[(i+1)%len(formats)]
			return
		}
	}
	r.Format = Defaultformat
}

// Split groups consecutive rows by sentence index.
func Split(rows []token.Row) [][]token.Row {
	var sentences [][]token.Row
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || rows[i].SentIndex != rows[start].SentIndex || rows[i].DocID != rows[start].DocID {
			sentences = append(sentences, rows[start:i])
			start = i
		}
	}

	return sentences
}
