package lemmatizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MorphologicalAnalyzer resolves word forms to dictionary base forms.
type MorphologicalAnalyzer struct {
	rules *MorphologicalRules
}

func NewMorphologicalAnalyzer(rules *MorphologicalRules) *MorphologicalAnalyzer {
	return &MorphologicalAnalyzer{rules: rules}
}

// Lemma returns the base form of word in category cat. Lookups ignore case;
// the lemma keeps the capitalization of word. When the word is not in the
// lexicon it returns word unchanged and false.
func (a *MorphologicalAnalyzer) Lemma(word string, cat Category) (string, bool) {
	form := strings.ToLower(word)
	if form == "" {
		return word, false
	}

	// exceptions
	if exception, isException := a.rules.getException(form, cat); isException {
		return matchCase(word, exception), true
	}

	// already a base form
	if a.rules.isBase(form, cat) {
		return word, true
	}

	// detachment rules
	if base, isBase := a.rules.getBase(form, cat); isBase {
		return matchCase(word, base), true
	}

	return word, false
}

// matchCase carries an upper-case or capitalized word's casing over to lemma.
func matchCase(word string, lemma string) string {
	first, size := utf8.DecodeRuneInString(word)
	switch {
	case !unicode.IsUpper(first):
		return lemma
	case size < len(word) && strings.ToUpper(word) == word:
		return strings.ToUpper(lemma)
	default:
		l, n := utf8.DecodeRuneInString(lemma)
		return string(unicode.ToUpper(l)) + lemma[n:]
	}
}

// LemmaForTag is Lemma with the category picked from a POS tag.
func (a *MorphologicalAnalyzer) LemmaForTag(word string, tag string) (string, bool) {
	return a.Lemma(word, CategoryFromTag(tag))
}
