package prose

import "github.com/revelaction/nlpcorpus/pipeline"

// chunk groups tagged tokens into noun phrases: an optional determiner,
// any number of modifiers and nouns, ending on a noun. A personal pronoun
// is a phrase on its own.
func chunk(tags []string) []pipeline.Span {
	var spans []pipeline.Span

	start := -1    // first token of the open phrase
	lastNoun := -1 // last noun of the open phrase

	closePhrase := func() {
		if start >= 0 && lastNoun >= start {
			spans = append(spans, pipeline.Span{Start: start, End: lastNoun + 1})
		}
		start, lastNoun = -1, -1
	}

	for i, tag := range tags {
		switch {
		case isPronoun(tag):
			closePhrase()
			spans = append(spans, pipeline.Span{Start: i, End: i + 1})

		case isDeterminer(tag):
			// a determiner after a noun opens a new phrase
			if start < 0 || lastNoun >= start {
				closePhrase()
				start = i
			}

		case isModifier(tag):
			if start >= 0 && lastNoun >= start {
				// "big cat small dog": modifier after a noun starts over
				closePhrase()
			}
			if start < 0 {
				start = i
			}

		case isNoun(tag):
			if start < 0 {
				start = i
			}
			lastNoun = i

		default:
			closePhrase()
		}
	}
	closePhrase()

	return spans
}
