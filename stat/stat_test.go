package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
)

func TestAggregate(t *testing.T) {
	tb := table.Assemble([]token.Record{
		{DocID: "a", Index: 0, Text: "Anna", Pos: "PROPN", SentStart: true, EntIOB: token.Begin, EntType: "PER", NounPhrase: 1},
		{DocID: "a", Index: 1, Text: "lief", Pos: "VERB", EntIOB: token.Outside},
		{DocID: "a", Index: 2, Text: ".", Pos: "PUNCT", EntIOB: token.Outside},
		{DocID: "b", Index: 0, Text: "New", Pos: "PROPN", SentStart: true, EntIOB: token.Begin, EntType: "LOC", NounPhrase: 2},
		{DocID: "b", Index: 1, Text: "York", Pos: "PROPN", EntIOB: token.Inside, EntType: "LOC", NounPhrase: 2},
		{DocID: "b", Index: 2, Text: "Berlin", Pos: "PROPN", SentStart: true, EntIOB: token.Begin, EntType: "LOC", NounPhrase: 3},
	})

	s := Aggregate(tb)
	assert.Equal(t, 2, s.NumDocs)
	assert.Equal(t, 6, s.NumTokens)
	assert.Equal(t, 3, s.NumSentences)
	assert.Equal(t, 2, s.TokensPerSentenceMean)
	assert.Equal(t, map[int]int{3: 1, 2: 1, 1: 1}, s.TokensPerSentenceDis)
	assert.Equal(t, 3, s.NumEntities)
	assert.Equal(t, map[string]int{"PER": 1, "LOC": 2}, s.EntitiesPerType)
	assert.Equal(t, 3, s.NumNounPhrases)
	assert.Equal(t, 4, s.PosDis["PROPN"])
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(table.Empty())
	assert.Zero(t, s.NumSentences)
	assert.Zero(t, s.TokensPerSentenceMean)
}
