package prose

import "strings"

// universal maps Penn Treebank tags to universal part-of-speech tags.
var universal = map[string]string{
	"CC":    "CCONJ",
	"CD":    "NUM",
	"DT":    "DET",
	"EX":    "PRON",
	"FW":    "X",
	"IN":    "ADP",
	"JJ":    "ADJ",
	"JJR":   "ADJ",
	"JJS":   "ADJ",
	"LS":    "X",
	"MD":    "AUX",
	"NN":    "NOUN",
	"NNS":   "NOUN",
	"NNP":   "PROPN",
	"NNPS":  "PROPN",
	"PDT":   "DET",
	"POS":   "PART",
	"PRP":   "PRON",
	"PRP$":  "PRON",
	"RB":    "ADV",
	"RBR":   "ADV",
	"RBS":   "ADV",
	"RP":    "ADP",
	"SYM":   "SYM",
	"TO":    "PART",
	"UH":    "INTJ",
	"VB":    "VERB",
	"VBD":   "VERB",
	"VBG":   "VERB",
	"VBN":   "VERB",
	"VBP":   "VERB",
	"VBZ":   "VERB",
	"WDT":   "DET",
	"WP":    "PRON",
	"WP$":   "PRON",
	"WRB":   "ADV",
	"$":     "SYM",
	"#":     "SYM",
	".":     "PUNCT",
	",":     "PUNCT",
	":":     "PUNCT",
	"(":     "PUNCT",
	")":     "PUNCT",
	"``":    "PUNCT",
	"''":    "PUNCT",
	"-LRB-": "PUNCT",
	"-RRB-": "PUNCT",
	"HYPH":  "PUNCT",
	"NFP":   "PUNCT",
}

// Universal returns the universal tag of a Penn Treebank tag, X if unknown.
func Universal(ptb string) string {
	if u, ok := universal[ptb]; ok {
		return u
	}
	return "X"
}

func isNoun(ptb string) bool {
	return strings.HasPrefix(ptb, "NN")
}

func isDeterminer(ptb string) bool {
	return ptb == "DT" || ptb == "PDT" || ptb == "PRP$"
}

func isModifier(ptb string) bool {
	switch ptb {
	case "JJ", "JJR", "JJS", "CD":
		return true
	}
	return false
}

func isPronoun(ptb string) bool {
	return ptb == "PRP" || ptb == "WP"
}

// sentenceFinal is the tag of ". ! ?"
const sentenceFinal = "."
