// Package pipelinetest provides a deterministic pipeline for tests.
package pipelinetest

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/revelaction/nlpcorpus/pipeline"
	"github.com/revelaction/nlpcorpus/token"
	"github.com/revelaction/nlpcorpus/vocab"
)

// ErrFail is returned for texts containing Pipeline.FailOn.
var ErrFail = errors.New("pipelinetest: refused text")

// Pipeline splits on white space and detaches trailing punctuation.
// Capitalised words are nouns, punctuation is PUNCT except "%", which is
// tagged NOUN on purpose, everything else is a verb. Runs of nouns are
// noun chunks. A token following ". ! ?" starts a sentence; the first
// token is never flagged. Words of Entities are entity tokens of the
// mapped type.
type Pipeline struct {
	Entities map[string]string
	FailOn   string

	// Calls counts Annotate calls.
	Calls int

	vocab *vocab.Store
}

var _ pipeline.Pipeline = (*Pipeline)(nil)

func New() *Pipeline {
	return &Pipeline{Entities: map[string]string{}, vocab: vocab.New()}
}

func (p *Pipeline) Vocab() *vocab.Store {
	if p.vocab == nil {
		p.vocab = vocab.New()
	}
	return p.vocab
}

func (p *Pipeline) Annotate(ctx context.Context, text string) (*pipeline.Doc, error) {
	p.Calls++
	if p.FailOn != "" && strings.Contains(text, p.FailOn) {
		return nil, ErrFail
	}

	doc := &pipeline.Doc{}
	for _, word := range split(text) {
		i := len(doc.Tokens)
		t := pipeline.Token{
			Index:  i,
			Text:   word,
			Lemma:  strings.ToLower(word),
			Pos:    pos(word),
			EntIOB: token.Outside,
		}

		if i > 0 {
			prev := doc.Tokens[i-1]
			t.SentStart = prev.Text == "." || prev.Text == "!" || prev.Text == "?"
		}

		if typ, ok := p.Entities[word]; ok {
			t.EntType = typ
			t.EntIOB = token.Begin
			if i > 0 && doc.Tokens[i-1].EntType == typ && !t.SentStart {
				t.EntIOB = token.Inside
			}
		}

		doc.Tokens = append(doc.Tokens, t)
	}

	start := -1
	for i, t := range doc.Tokens {
		if t.Pos == "NOUN" && t.Text != "%" {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			doc.Chunks = append(doc.Chunks, pipeline.Span{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		doc.Chunks = append(doc.Chunks, pipeline.Span{Start: start, End: len(doc.Tokens)})
	}

	pipeline.Intern(p.Vocab(), doc)
	return doc, nil
}

func split(text string) []string {
	var out []string
	for _, f := range strings.Fields(text) {
		var tail []string
		for len(f) > 1 && strings.ContainsRune(".!?,%", rune(f[len(f)-1])) {
			tail = append([]string{f[len(f)-1:]}, tail...)
			f = f[:len(f)-1]
		}
		out = append(out, f)
		out = append(out, tail...)
	}
	return out
}

func pos(word string) string {
	r := []rune(word)[0]
	switch {
	case word == "%":
		return "NOUN"
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return token.PunctTag
	case unicode.IsUpper(r):
		return "NOUN"
	}
	return "VERB"
}
