package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
)

// Table writes the first head rows of t as aligned columns, followed by the
// table shape. A negative head prints every row.
func Table(w io.Writer, t *table.Table, head int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "\t%s\n", strings.Join(token.Columns, "\t"))
	for i, r := range t.Head(head) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%d\t%s\t%d\n",
			i, r.DocID, r.Index, r.SentIndex, quote(r.Text), quote(r.Token), r.Pos, r.EntIOB, r.EntIndex, r.EntType, r.NounPhrase)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "[%d rows x %d columns]\n", t.Len(), len(token.Columns))
	return err
}

// tabs and newlines in token texts would break the columns
func quote(s string) string {
	if strings.ContainsAny(s, "\t\n") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
