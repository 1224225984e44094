package stat

import (
	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
)

type Stats struct {
	NumDocs               int
	NumTokens             int
	NumSentences          int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
	NumEntities           int
	EntitiesPerType       map[string]int
	NumNounPhrases        int
	PosDis                map[string]int
}

// Aggregate computes the statistics of a token table. Sentences, entities
// and noun phrases are counted by their distinct batch-wide ids.
func Aggregate(t *table.Table) Stats {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		EntitiesPerType:      map[string]int{},
		PosDis:               map[string]int{},
	}

	stats.NumDocs = len(t.Docs())
	stats.NumTokens = t.Len()

	sentences := map[int]int{}
	entities := map[int]struct{}{}
	phrases := map[int]struct{}{}

	for i := 0; i < t.Len(); i++ {
		sentences[t.SentIdx[i]]++
		stats.PosDis[t.Pos.Value(i)]++

		if id := t.EntIdx[i]; id > 0 {
			if _, ok := entities[id]; !ok && token.IOB(t.EntIOB.Value(i)) == token.Begin {
				entities[id] = struct{}{}
				stats.EntitiesPerType[t.EntType.Value(i)]++
			}
		}

		if id := t.NounPhrase[i]; id > 0 {
			phrases[id] = struct{}{}
		}
	}

	stats.NumSentences = len(sentences)
	for _, n := range sentences {
		stats.TokensPerSentenceDis[n]++
	}

	if stats.NumSentences > 0 {
		stats.TokensPerSentenceMean = stats.NumTokens / stats.NumSentences
	}

	stats.NumEntities = len(entities)
	stats.NumNounPhrases = len(phrases)

	return stats
}
