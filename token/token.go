package token

// IOB marks the position of a token in a named-entity span.
type IOB string

const (
	Begin   IOB = "B"
	Inside  IOB = "I"
	Outside IOB = "O"
)

// ParseIOB normalises a pipeline IOB marker. Anything but B or I is Outside.
func ParseIOB(s string) IOB {
	switch IOB(s) {
	case Begin:
		return Begin
	case Inside:
		return Inside
	}
	return Outside
}

// PunctTag is the part-of-speech category forced on punctuation tokens.
const PunctTag = "PUNCT"

var punctuation = map[string]struct{}{
	"[": {}, "]": {}, "<": {}, ">": {}, "/": {}, "–": {}, "%": {},
}

// IsPunct reports whether a resolved token belongs to the fixed
// punctuation set the taggers tend to mislabel.
func IsPunct(tok string) bool {
	_, ok := punctuation[tok]
	return ok
}

// Record is a token as extracted from one annotated document, before the
// batch-wide indices are derived.
type Record struct {
	DocID string `json:"doc"`

	// Position of the token in the document, as emitted by the pipeline.
	Index int    `json:"index"`
	Text  string `json:"text"`
	Pos   string `json:"pos"`

	// Dictionary lemma, nil when the dictionary has no entry.
	DictLemma *string `json:"dict_lemma,omitempty"`

	// Lemma assigned by the pipeline
	Lemma string `json:"lemma"`

	SentStart  bool   `json:"sent_start"`
	EntIOB     IOB    `json:"ent_iob"`
	EntType    string `json:"ent_type"`
	NounPhrase int    `json:"np"`
}

// Resolved returns the dictionary lemma when present, else the pipeline lemma.
func (r Record) Resolved() string {
	if r.DictLemma != nil {
		return *r.DictLemma
	}
	return r.Lemma
}

// Row is a row of the final token table.
type Row struct {
	DocID      string `json:"doc"`
	Index      int    `json:"tok_idx"`
	SentIndex  int    `json:"sent_idx"`
	Text       string `json:"text"`
	Token      string `json:"token"`
	Pos        string `json:"pos"`
	EntIOB     IOB    `json:"ent_iob"`
	EntIndex   int    `json:"ent_idx"`
	EntType    string `json:"ent_type"`
	NounPhrase int    `json:"noun_phrase"`
}

// Columns is the fixed column order of the token table.
var Columns = []string{
	"doc", "tok_idx", "sent_idx", "text", "token", "pos", "ent_iob", "ent_idx", "ent_type", "noun_phrase",
}
