package query

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/nlpcorpus/render"
	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/token"
)

const (
	completionThreshold = 2

	// docPrefix prefixes a document id in the prompt
	docPrefix = "@"

	// entityPrefix prefixes an entity type in the prompt
	entityPrefix = "#"
)

// Handler is a REPL over a token table.
type Handler struct {
	Table    *table.Table
	Renderer *render.Renderer
	Out      io.Writer

	// resolved token -> frequency
	tokens map[string]int
	// sorted by frequency, then alphabetically
	vocabulary []string
	entTypes   []string
}

func NewHandler(t *table.Table, r *render.Renderer, out io.Writer) *Handler {
	h := &Handler{
		Table:    t,
		Renderer: r,
		Out:      out,
		tokens:   map[string]int{},
	}

	types := map[string]struct{}{}
	for i := 0; i < t.Len(); i++ {
		h.tokens[t.Token[i]]++
		if typ := t.EntType.Value(i); typ != "" {
			types[typ] = struct{}{}
		}
	}

	for tok := range h.tokens {
		h.vocabulary = append(h.vocabulary, tok)
	}
	sort.Slice(h.vocabulary, func(i, j int) bool {
		a, b := h.vocabulary[i], h.vocabulary[j]
		if h.tokens[a] != h.tokens[b] {
			return h.tokens[a] > h.tokens[b]
		}
		return a < b
	})

	for typ := range types {
		h.entTypes = append(h.entTypes, typ)
	}
	sort.Strings(h.entTypes)

	return h
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, @doc, #entity, tokens, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("nlpcorpus query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasPrefix = !h.Renderer.HasPrefix
					fmt.Fprintf(h.Out, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		in = strings.TrimSpace(in)
		if in == "quit" {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)
		h.Eval(in)
	}
}

// Eval runs one query line.
//
//	@<doc>    prints the sentences of a document
//	#<type>   lists the entities of a type
//	<tok>...  prints the sentences containing all resolved tokens
func (h *Handler) Eval(in string) {
	switch {
	case strings.HasPrefix(in, docPrefix):
		id := strings.TrimPrefix(in, docPrefix)
		rows := h.Table.Doc(id)
		if len(rows) == 0 {
			fmt.Fprintf(h.Out, "✍  no document %s\n", id)
			return
		}
		h.Renderer.Sentences(h.Out, rows)

	case strings.HasPrefix(in, entityPrefix):
		for _, e := range h.Entities(strings.TrimPrefix(in, entityPrefix)) {
			fmt.Fprintf(h.Out, "📖 %s %4d %s\n", e.DocID, e.Index, e.Text)
		}

	default:
		for _, s := range h.Sentences(strings.Fields(in)) {
			fmt.Fprintf(h.Out, "📖 %s ", s[0].DocID)
			h.Renderer.Sentences(h.Out, s)
		}
	}
}

// Entity is a named-entity span of the table.
type Entity struct {
	DocID string
	Index int
	Type  string
	Text  string
}

// Entities returns the entity spans of type typ in table order.
func (h *Handler) Entities(typ string) []Entity {
	var ents []Entity
	for i := 0; i < h.Table.Len(); i++ {
		id := h.Table.EntIdx[i]
		if id == 0 || h.Table.EntType.Value(i) != typ {
			continue
		}

		if token.IOB(h.Table.EntIOB.Value(i)) == token.Begin || len(ents) == 0 ||
			ents[len(ents)-1].Index != id || ents[len(ents)-1].DocID != h.Table.DocID[i] {
			ents = append(ents, Entity{DocID: h.Table.DocID[i], Index: id, Type: typ, Text: h.Table.Text[i]})
			continue
		}

		ents[len(ents)-1].Text += " " + h.Table.Text[i]
	}

	return ents
}

// Sentences returns the sentences containing every token of toks.
func (h *Handler) Sentences(toks []string) [][]token.Row {
	if len(toks) == 0 {
		return nil
	}

	var out [][]token.Row
	for _, s := range render.Split(h.Table.Rows()) {
		if containsAll(s, toks) {
			out = append(out, s)
		}
	}

	return out
}

func containsAll(s []token.Row, toks []string) bool {
	for _, tok := range toks {
		found := false
		for _, r := range s {
			if r.Token == tok {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.Complete(in.GetWordBeforeCursor())
}

// Complete returns the suggestions for the word being typed.
func (h *Handler) Complete(word string) []prompt.Suggest {
	s := []prompt.Suggest{}

	switch {
	case strings.HasPrefix(word, docPrefix):
		prefix := strings.TrimPrefix(word, docPrefix)
		for _, id := range h.Table.Docs() {
			if strings.HasPrefix(id, prefix) {
				s = append(s, prompt.Suggest{Text: docPrefix + id, Description: "📖 document"})
			}
		}

	case strings.HasPrefix(word, entityPrefix):
		prefix := strings.TrimPrefix(word, entityPrefix)
		for _, typ := range h.entTypes {
			if strings.HasPrefix(typ, prefix) {
				s = append(s, prompt.Suggest{Text: entityPrefix + typ, Description: "🔖 entity"})
			}
		}

	default:
		if len([]rune(word)) < completionThreshold {
			return s
		}

		for _, tok := range h.vocabulary {
			if strings.HasPrefix(tok, word) {
				s = append(s, prompt.Suggest{Text: tok, Description: fmt.Sprintf("%d", h.tokens[tok])})
			}
		}
	}

	return s
}
