package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
)

func records() []token.Record {
	return []token.Record{
		{DocID: "a", Index: 0, Text: "Anna", Pos: "PROPN", Lemma: "Anna", SentStart: true, EntIOB: token.Begin, EntType: "PER"},
		{DocID: "a", Index: 1, Text: "lief", Pos: "VERB", Lemma: "laufen", EntIOB: token.Outside},
		{DocID: "a", Index: 2, Text: ".", Pos: "PUNCT", Lemma: ".", EntIOB: token.Outside},
		{DocID: "a", Index: 3, Text: "Gut", Pos: "ADJ", Lemma: "gut", SentStart: true, EntIOB: token.Outside},
	}
}

func TestSentences(t *testing.T) {
	rows := table.Assemble(records()).Rows()

	var buf bytes.Buffer
	r := NewRenderer()
	r.Sentences(&buf, rows)
	if got, want := buf.String(), "Anna lief .\nGut\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	buf.Reset()
	r.NextFormat()
	r.HasPrefix = true
	r.Sentences(&buf, rows)
	if got, want := buf.String(), "   1 Anna laufen .\n   2 gut\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestColor(t *testing.T) {
	r := NewRenderer()
	r.HasColor = true

	got := r.SentenceString(table.Assemble(records()).Rows()[:2])
	if got != Yellow256+"Anna"+Off+" lief" {
		t.Errorf("unexpected colored sentence %q", got)
	}

	rows := table.Assemble([]token.Record{
		{DocID: "b", Index: 0, Text: "Siemens", Lemma: "Siemens", SentStart: true, EntIOB: token.Begin, EntType: "ORG"},
		{DocID: "b", Index: 1, Text: "Berlin", Lemma: "Berlin", EntIOB: token.Begin, EntType: "LOC"},
		{DocID: "b", Index: 2, Text: "Euro", Lemma: "Euro", EntIOB: token.Begin, EntType: "MISC"},
		{DocID: "b", Index: 3, Text: "Montag", Lemma: "Montag", EntIOB: token.Begin, EntType: "DATE"},
	}).Rows()

	var buf bytes.Buffer
	r.HasPrefix = true
	r.Sentences(&buf, rows)
	want := Grey256 + "   1" + Off + " " + Teal + "Siemens" + Off + " " + Green256 + "Berlin" + Off + " " +
		Magenta + "Euro" + Off + " " + Purple + "Montag" + Off + "\n"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNextFormat(t *testing.T) {
	r := NewRenderer()
	for _, want := range []string{"token", "pos", "text"} {
		r.NextFormat()
		if r.Format != want {
			t.Errorf("expected format %s, got %s", want, r.Format)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, table.Assemble(records()), 2); err != nil {
		t.Fatalf("table: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}

	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "doc") {
		t.Errorf("unexpected header %q", lines[0])
	}

	if fields := strings.Fields(lines[2]); fields[1] != "a" || fields[5] != "laufen" {
		t.Errorf("unexpected row %q", lines[2])
	}

	if lines[3] != "[4 rows x 10 columns]" {
		t.Errorf("unexpected shape %q", lines[3])
	}
}
