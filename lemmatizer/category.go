package lemmatizer

import "strings"

// Category is the lexical category a lemma is looked up in.
type Category int

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
)

func (c Category) String() string {
	switch c {
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "noun"
	}
}

// CategoryFromTag maps a Penn Treebank tag to a category by its first
// letter: J adjective, R adverb, V verb, anything else noun.
func CategoryFromTag(tag string) Category {
	if tag == "" {
		return Noun
	}

	switch strings.ToUpper(tag[:1]) {
	case "J":
		return Adjective
	case "R":
		return Adverb
	case "V":
		return Verb
	default:
		return Noun
	}
}
