package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/nlpcorpus/token"
)

func strp(s string) *string { return &s }

func records() []token.Record {
	return []token.Record{
		{DocID: "A", Index: 0, Text: "Anna", Pos: "PROPN", Lemma: "Anna", SentStart: true, EntIOB: token.Begin, EntType: "PER", NounPhrase: 1},
		{DocID: "A", Index: 1, Text: "lief", Pos: "VERB", Lemma: "lief", DictLemma: strp("laufen"), EntIOB: token.Outside},
		{DocID: "A", Index: 2, Text: "%", Pos: "NOUN", Lemma: "%", EntIOB: token.Outside},
		{DocID: "A", Index: 3, Text: "New", Pos: "PROPN", Lemma: "New", SentStart: true, EntIOB: token.Begin, EntType: "LOC", NounPhrase: 2},
		{DocID: "A", Index: 4, Text: "York", Pos: "PROPN", Lemma: "York", EntIOB: token.Inside, EntType: "LOC", NounPhrase: 2},
		{DocID: "B", Index: 0, Text: "Paris", Pos: "PROPN", Lemma: "Paris", SentStart: true, EntIOB: token.Begin, EntType: "LOC", NounPhrase: 3},
		{DocID: "B", Index: 1, Text: "/", Pos: "SYM", Lemma: "/", EntIOB: ""},
	}
}

func TestAssemble(t *testing.T) {
	tb := Assemble(records())
	require.Equal(t, 7, tb.Len())

	assert.Equal(t, []string{"Anna", "laufen", "%", "New", "York", "Paris", "/"}, tb.Token)
	assert.Equal(t, []string{"PROPN", "VERB", "PUNCT", "PROPN", "PROPN", "PROPN", "PUNCT"}, tb.Pos.Values())
	assert.Equal(t, []int{1, 1, 1, 2, 2, 3, 3}, tb.SentIdx)
	assert.Equal(t, []int{1, 0, 0, 2, 2, 3, 0}, tb.EntIdx)
	assert.Equal(t, []string{"B", "O", "O", "B", "I", "B", "O"}, tb.EntIOB.Values())
	assert.Equal(t, []int{1, 0, 0, 2, 2, 3, 0}, tb.NounPhrase)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0, 1}, tb.TokIdx)

	assert.Equal(t, []string{"B", "I", "O"}, tb.EntIOB.Levels)
	assert.Equal(t, []string{"", "LOC", "PER"}, tb.EntType.Levels)
	assert.Equal(t, []string{"A", "B"}, tb.Docs())
}

func TestAssembleRow(t *testing.T) {
	tb := Assemble(records())

	want := token.Row{
		DocID:      "A",
		Index:      4,
		SentIndex:  2,
		Text:       "York",
		Token:      "York",
		Pos:        "PROPN",
		EntIOB:     token.Inside,
		EntIndex:   2,
		EntType:    "LOC",
		NounPhrase: 2,
	}
	assert.Equal(t, want, tb.Row(4))
	assert.Len(t, tb.Doc("B"), 2)
	assert.Len(t, tb.Head(3), 3)
	assert.Len(t, tb.Head(-1), 7)
	assert.Len(t, tb.Head(100), 7)
}

func TestAssembleEmpty(t *testing.T) {
	tb := Assemble(nil)
	assert.Equal(t, 0, tb.Len())
	assert.Empty(t, tb.Rows())
	assert.True(t, tb.Equal(Empty()))
}

func TestFromRows(t *testing.T) {
	tb := Assemble(records())
	assert.True(t, tb.Equal(FromRows(tb.Rows())))
}

func TestCodec(t *testing.T) {
	tb := Assemble(records())

	data, err := Encode(tb)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, tb.Equal(got))
	assert.Equal(t, tb.Rows(), got.Rows())
}

func TestDecodeTruncated(t *testing.T) {
	data, err := Encode(Assemble(records()))
	require.NoError(t, err)

	for n := 0; n < len(data); n++ {
		got, err := Decode(data[:n])
		assert.Error(t, err, "%d of %d bytes", n, len(data))
		assert.Nil(t, got)
	}
}
