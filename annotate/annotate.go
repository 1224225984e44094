package annotate

import (
	"context"
	"fmt"
	"io"

	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/lemma"
	"github.com/revelaction/nlpcorpus/pipeline"
	"github.com/revelaction/nlpcorpus/token"
)

// State holds the counters that run across all documents of a batch.
type State struct {
	// NounPhrase is the id of the last noun chunk seen.
	NounPhrase int
}

// Failure is a document the pipeline could not annotate.
type Failure struct {
	DocID string
	Err   error
}

// Annotator turns documents into token records.
type Annotator struct {
	Pipeline pipeline.Pipeline

	// Lookup is the dictionary lemmatizer; lemma.None when nil.
	Lookup lemma.LookupFunc

	// ContinueOnError skips documents the pipeline fails on instead of
	// aborting the batch.
	ContinueOnError bool
}

// New returns an annotator over p and the dictionary lookup.
func New(p pipeline.Pipeline, lookup lemma.LookupFunc) *Annotator {
	return &Annotator{Pipeline: p, Lookup: lookup}
}

// Annotate extracts the token records of one document. Noun chunks take
// their ids from state, in the order the pipeline emits them.
func (a *Annotator) Annotate(ctx context.Context, state *State, doc corpus.Document) ([]token.Record, error) {
	d, err := a.Pipeline.Annotate(ctx, doc.Unit())
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", doc.ID, err)
	}

	lookup := a.Lookup
	if lookup == nil {
		lookup = lemma.None
	}

	phrases := make(map[int]int)
	for _, chunk := range d.Chunks {
		state.NounPhrase++
		for i := chunk.Start; i < chunk.End; i++ {
			phrases[i] = state.NounPhrase
		}
	}

	records := make([]token.Record, 0, len(d.Tokens))
	for _, t := range d.Tokens {
		r := token.Record{
			DocID:      doc.ID,
			Index:      t.Index,
			Text:       t.Text,
			Pos:        t.Pos,
			Lemma:      t.Lemma,
			SentStart:  t.SentStart || t.Index == 0,
			EntIOB:     t.EntIOB,
			EntType:    t.EntType,
			NounPhrase: phrases[t.Index],
		}

		if l, ok := lookup(t.Text, t.Pos); ok {
			r.DictLemma = &l
		}

		records = append(records, r)
	}

	return records, nil
}

// AnnotateAll annotates docs one at a time, in order, and returns all
// records of the batch. progress is called after every document.
func (a *Annotator) AnnotateAll(ctx context.Context, docs []corpus.Document, progress func(done int, doc corpus.Document)) ([]token.Record, []Failure, error) {
	var state State
	var records []token.Record
	var failures []Failure

	for i, doc := range docs {
		recs, err := a.Annotate(ctx, &state, doc)
		if err != nil {
			if !a.ContinueOnError {
				return nil, failures, err
			}
			failures = append(failures, Failure{DocID: doc.ID, Err: err})
		}

		records = append(records, recs...)

		if progress != nil {
			progress(i+1, doc)
		}
	}

	return records, failures, nil
}

// Check writes the position, sentence start flag and text of every token
// of docs, one per line.
func (a *Annotator) Check(ctx context.Context, w io.Writer, docs []corpus.Document) error {
	for _, doc := range docs {
		d, err := a.Pipeline.Annotate(ctx, doc.Unit())
		if err != nil {
			return fmt.Errorf("document %s: %w", doc.ID, err)
		}

		for _, t := range d.Tokens {
			fmt.Fprintf(w, "%d %t %s\n", t.Index, t.SentStart, t.Text)
		}
	}

	return nil
}
