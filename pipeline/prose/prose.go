// Package prose is an in-process pipeline on top of github.com/jdkato/prose.
// It needs no external service, which makes it the default for small
// corpora and for tests; its models are English only.
package prose

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/pipeline"
	"github.com/revelaction/nlpcorpus/token"
	"github.com/revelaction/nlpcorpus/vocab"
)

// Pipeline annotates texts with the prose tokenizer, tagger and entity
// extractor.
type Pipeline struct {
	vocab *vocab.Store
}

var _ pipeline.Pipeline = (*Pipeline)(nil)

// New returns a pipeline interning into voc, or into a new store when nil.
func New(voc *vocab.Store) *Pipeline {
	if voc == nil {
		voc = vocab.New()
	}
	return &Pipeline{vocab: voc}
}

func (p *Pipeline) Annotate(ctx context.Context, text string) (*pipeline.Doc, error) {
	if strings.TrimSpace(text) == "" {
		return &pipeline.Doc{}, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: prose: %w", nlperr.ErrAnnotate, err)
	}

	out := build(doc.Tokens())
	pipeline.Intern(p.vocab, out)
	return out, nil
}

func (p *Pipeline) Vocab() *vocab.Store {
	return p.vocab
}

// build converts prose tokens. A token starts a sentence when it follows
// sentence-final punctuation.
func build(toks []prose.Token) *pipeline.Doc {
	doc := &pipeline.Doc{Tokens: make([]pipeline.Token, len(toks))}
	tags := make([]string, len(toks))

	for i, t := range toks {
		tags[i] = t.Tag
		pos := Universal(t.Tag)
		iob, typ := entity(t.Label)

		lemma := t.Text
		if pos != "PROPN" {
			lemma = strings.ToLower(t.Text)
		}

		doc.Tokens[i] = pipeline.Token{
			Index:     i,
			Text:      t.Text,
			Lemma:     lemma,
			Pos:       pos,
			SentStart: i == 0 || toks[i-1].Tag == sentenceFinal,
			EntIOB:    iob,
			EntType:   typ,
		}
	}

	doc.Chunks = chunk(tags)
	return doc
}

// entity splits a "B-PERSON" style label.
func entity(label string) (token.IOB, string) {
	if label == "" || label == "O" {
		return token.Outside, ""
	}

	prefix, typ, found := strings.Cut(label, "-")
	if !found {
		return token.Begin, label
	}

	switch prefix {
	case "B":
		return token.Begin, typ
	case "I":
		return token.Inside, typ
	}

	return token.Begin, label
}
