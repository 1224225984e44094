package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvedPrefersDictionaryLemma(t *testing.T) {
	dict := "Haus"
	r := Record{Lemma: "häuser", DictLemma: &dict}
	assert.Equal(t, "Haus", r.Resolved())

	r.DictLemma = nil
	assert.Equal(t, "häuser", r.Resolved())

	empty := ""
	r.DictLemma = &empty
	assert.Equal(t, "", r.Resolved())
}

func TestParseIOB(t *testing.T) {
	assert.Equal(t, Begin, ParseIOB("B"))
	assert.Equal(t, Inside, ParseIOB("I"))
	assert.Equal(t, Outside, ParseIOB("O"))
	assert.Equal(t, Outside, ParseIOB(""))
	assert.Equal(t, Outside, ParseIOB("X"))
}

func TestIsPunct(t *testing.T) {
	for _, s := range []string{"[", "]", "<", ">", "/", "–", "%"} {
		assert.True(t, IsPunct(s), s)
	}
	for _, s := range []string{".", ",", "-", "a", ""} {
		assert.False(t, IsPunct(s), s)
	}
}
