// Package lemma is a dictionary lemmatizer over IWNLP lemma files
// (forms extracted from Wiktionary).
package lemma

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/viant/afs"

	"github.com/revelaction/nlpcorpus/nlperr"
)

// LookupFunc returns the dictionary lemma of a token given its universal
// part-of-speech tag.
type LookupFunc func(text, pos string) (string, bool)

// None is a LookupFunc without dictionary.
func None(string, string) (string, bool) {
	return "", false
}

// Entry is a record of an IWNLP lemma file.
type Entry struct {
	Form   string  `json:"Form"`
	Lemmas []Lemma `json:"Lemmas"`
}

type Lemma struct {
	Text string `json:"Text"`
	POS  string `json:"POS"`
}

// IWNLP word classes
const (
	Noun                 = "Noun"
	ProperNoun           = "ProperNoun"
	X                    = "X"
	AdjectivalDeclension = "AdjectivalDeclension"
	Adjective            = "Adjective"
	Verb                 = "Verb"
)

type candidate struct {
	form  string
	lemma string
	class string
}

// Dictionary maps inflected forms to lemmas.
type Dictionary struct {
	// lower-cased form -> candidates in file order
	forms map[string][]candidate
}

// New builds a dictionary from entries.
func New(entries []Entry) *Dictionary {
	d := &Dictionary{forms: make(map[string][]candidate, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(e.Form)
		for _, l := range e.Lemmas {
			d.forms[key] = append(d.forms[key], candidate{form: e.Form, lemma: l.Text, class: l.POS})
		}
	}

	return d
}

// Load reads an IWNLP JSON file.
func Load(ctx context.Context, location string) (*Dictionary, error) {
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: lemmatizer %s: %w", nlperr.ErrResourceLoad, location, err)
	}

	var entries []Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: lemmatizer %s: %w", nlperr.ErrResourceLoad, location, err)
	}

	return New(entries), nil
}

// Len returns the number of distinct forms.
func (d *Dictionary) Len() int {
	return len(d.forms)
}

// Lookup returns the lemma of text for the universal tag pos. Only nouns,
// adjectives and verbs are looked up. Ambiguous forms return the first
// lemma of the file.
func (d *Dictionary) Lookup(text, pos string) (string, bool) {
	if l, ok := d.lookup(text, pos); ok {
		return l, true
	}

	// compounds like "Ost-West-Konflikt": lemmatize the head
	if i := strings.LastIndex(text, "-"); i > 0 && i < len(text)-1 {
		if l, ok := d.lookup(text[i+1:], pos); ok {
			return text[:i+1] + l, true
		}
	}

	return "", false
}

func (d *Dictionary) lookup(text, pos string) (string, bool) {
	switch pos {
	case "NOUN", "PROPN", "X":
		for _, class := range []string{Noun, X, AdjectivalDeclension} {
			if l, ok := d.find(text, false, class); ok {
				return l, true
			}
		}
		return d.find(text, true, ProperNoun, Noun)

	case "ADJ":
		if l, ok := d.find(text, false, Adjective); ok {
			return l, true
		}
		return d.find(text, true, Adjective)

	case "VERB", "AUX":
		return d.find(text, true, Verb)
	}

	return "", false
}

func (d *Dictionary) find(text string, ignoreCase bool, classes ...string) (string, bool) {
	for _, c := range d.forms[strings.ToLower(text)] {
		if !ignoreCase && c.form != text {
			continue
		}

		for _, class := range classes {
			if c.class == class {
				return c.lemma, true
			}
		}
	}

	return "", false
}
