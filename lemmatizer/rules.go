package lemmatizer

import "strings"

// MorphologicalRules is the lexicon of one language: irregular forms,
// known base forms and detachment rules per category.
type MorphologicalRules struct {
	Exceptions map[Category]map[string]string
	Bases      map[Category]map[string]bool
	Suffixes   map[Category][][]string
}

func NewMorphologicalRules() *MorphologicalRules {
	return &MorphologicalRules{
		Exceptions: make(map[Category]map[string]string),
		Bases:      make(map[Category]map[string]bool),
		Suffixes:   make(map[Category][][]string),
	}
}

func (rules *MorphologicalRules) getException(form string, cat Category) (string, bool) {
	exc, hasExc := rules.Exceptions[cat][form]
	return exc, hasExc
}

func (rules *MorphologicalRules) isBase(form string, cat Category) bool {
	return rules.Bases[cat][form]
}

// getBase applies the detachment rules in order and returns the first
// candidate that is a known base. A candidate ending in a doubled consonant
// ("runn") is also tried undoubled ("run").
func (rules *MorphologicalRules) getBase(form string, cat Category) (string, bool) {
	bases := rules.Bases[cat]
	for _, rule := range rules.Suffixes[cat] {
		if !strings.HasSuffix(form, rule[0]) || len(form) == len(rule[0]) {
			continue
		}

		base := form[:len(form)-len(rule[0])] + rule[1]
		if bases[base] {
			return base, true
		}

		if rule[1] == "" {
			if undoubled, ok := undouble(base); ok && bases[undoubled] {
				return undoubled, true
			}
		}
	}

	return "", false
}

func undouble(s string) (string, bool) {
	n := len(s)
	if n < 3 || s[n-1] != s[n-2] || strings.IndexByte("aeiou", s[n-1]) >= 0 {
		return "", false
	}
	return s[:n-1], true
}
