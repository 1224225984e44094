package pipeline

import (
	"context"

	"github.com/revelaction/nlpcorpus/token"
	"github.com/revelaction/nlpcorpus/vocab"
)

// Pipeline is an external NLP pipeline: tokenizer, tagger, parser,
// entity recognizer and noun-chunk extractor behind a single call.
type Pipeline interface {
	// Annotate runs the pipeline over text.
	Annotate(ctx context.Context, text string) (*Doc, error)

	// Vocab returns the vocabulary the pipeline interns its strings into.
	Vocab() *vocab.Store
}

// Doc is an annotated text.
type Doc struct {
	// Tokens in emission order; Token.Index is the position in this slice.
	Tokens []Token

	// Noun chunks in emission order.
	Chunks []Span
}

// Token is a single annotated token.
type Token struct {
	Index     int
	Text      string
	Lemma     string
	Pos       string
	SentStart bool
	EntIOB    token.IOB
	EntType   string
}

// Span is a half-open token range [Start, End) of a Doc.
type Span struct {
	Start int
	End   int
}

// Intern adds the strings of every token of doc to the store.
func Intern(s *vocab.Store, doc *Doc) {
	for _, t := range doc.Tokens {
		s.Add(t.Text)
		s.Add(t.Lemma)
		s.Add(t.Pos)
		s.Add(t.EntType)
	}
}
