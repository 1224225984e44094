package corpus

import (
	"strings"
)

// Filter decides which documents of a source are annotated.
type Filter interface {
	Name() string
	Keep(doc Document) bool
}

// AllowList keeps only documents whose identifier is in the list.
type AllowList struct {
	name string
	ids  map[string]struct{}
}

var _ Filter = (*AllowList)(nil)

// NewAllowList creates an allow-list filter from identifiers.
func NewAllowList(name string, ids []string) *AllowList {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return &AllowList{name: name, ids: set}
}

func (a *AllowList) Name() string {
	return a.name
}

func (a *AllowList) Keep(doc Document) bool {
	_, ok := a.ids[doc.ID]
	return ok
}

// Len returns the number of allowed identifiers.
func (a *AllowList) Len() int {
	return len(a.ids)
}

// Rule binds a filter to the sources it curates: the filter applies to
// every source location containing Match.
type Rule struct {
	Match  string
	Filter Filter
}

// Filters is the set of dataset-specific curation rules.
type Filters []Rule

// For returns the filters that apply to the source location.
func (fs Filters) For(location string) []Filter {
	var out []Filter
	for _, r := range fs {
		if r.Match != "" && strings.Contains(location, r.Match) {
			out = append(out, r.Filter)
		}
	}

	return out
}

// Apply keeps the documents accepted by every filter, preserving order.
func Apply(docs []Document, filters []Filter) []Document {
	if len(filters) == 0 {
		return docs
	}

	kept := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if keepAll(doc, filters) {
			kept = append(kept, doc)
		}
	}

	return kept
}

func keepAll(doc Document, filters []Filter) bool {
	for _, f := range filters {
		if !f.Keep(doc) {
			return false
		}
	}

	return true
}
