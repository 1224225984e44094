package lemma

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/nlpcorpus/nlperr"
)

const iwnlp = `[
  {"Form": "Häuser", "Lemmas": [{"Text": "Haus", "POS": "Noun"}]},
  {"Form": "Konflikte", "Lemmas": [{"Text": "Konflikt", "POS": "Noun"}]},
  {"Form": "Berlins", "Lemmas": [{"Text": "Berlin", "POS": "ProperNoun"}]},
  {"Form": "schöne", "Lemmas": [{"Text": "schön", "POS": "Adjective"}]},
  {"Form": "Ging", "Lemmas": [{"Text": "gehen", "POS": "Verb"}]},
  {"Form": "Laufen", "Lemmas": [{"Text": "Laufen", "POS": "Noun"}, {"Text": "laufen", "POS": "Verb"}]}
]`

func writeDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "IWNLP.Lemmatizer.json")
	require.NoError(t, os.WriteFile(path, []byte(iwnlp), 0644))
	return path
}

func TestLookup(t *testing.T) {
	d, err := Load(context.Background(), writeDict(t))
	require.NoError(t, err)
	assert.Equal(t, 6, d.Len())

	cases := []struct {
		text, pos string
		want      string
		ok        bool
	}{
		{"Häuser", "NOUN", "Haus", true},
		{"häuser", "NOUN", "Haus", true}, // case-insensitive fallback
		{"Berlins", "PROPN", "Berlin", true},
		{"schöne", "ADJ", "schön", true},
		{"Schöne", "ADJ", "schön", true},
		{"ging", "VERB", "gehen", true},
		{"Laufen", "NOUN", "Laufen", true},
		{"Laufen", "VERB", "laufen", true},
		{"Häuser", "VERB", "", false},
		{"Häuser", "DET", "", false},
		{"Unbekannt", "NOUN", "", false},
		{"Ost-West-Konflikte", "NOUN", "Ost-West-Konflikt", true},
		{"Ost-", "NOUN", "", false},
	}

	for _, c := range cases {
		got, ok := d.Lookup(c.text, c.pos)
		assert.Equal(t, c.ok, ok, c.text+"/"+c.pos)
		assert.Equal(t, c.want, got, c.text+"/"+c.pos)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = Load(context.Background(), bad)
	assert.ErrorIs(t, err, nlperr.ErrResourceLoad)
}

func TestNone(t *testing.T) {
	l, ok := None("Haus", "NOUN")
	assert.False(t, ok)
	assert.Empty(t, l)
}
