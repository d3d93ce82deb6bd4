package types

import (
	"strings"
	"unicode"
)

// TaggedToken is a token paired with its part-of-speech tag.
type TaggedToken struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// LabeledToken is a token paired with the entity label a classifier gave it.
type LabeledToken struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// OutsideLabel is the label classifiers give to tokens outside any entity.
const OutsideLabel = "O"

func (t LabeledToken) IsOutside() bool {
	return t.Label == OutsideLabel
}

// NormalizedToken is the canonical form of a tagged token. Resolved is false
// when the normalizer could not map the token and Form is the raw text.
type NormalizedToken struct {
	Text     string `json:"text"`
	Tag      string `json:"tag,omitempty"`
	Form     string `json:"form"`
	Resolved bool   `json:"resolved"`
}

func Texts(tagged []TaggedToken) []string {
	res := make([]string, len(tagged))
	for i, t := range tagged {
		res[i] = t.Text
	}
	return res
}

func Forms(normalized []NormalizedToken) []string {
	res := make([]string, len(normalized))
	for i, n := range normalized {
		res[i] = n.Form
	}
	return res
}

func LabeledTexts(labeled []LabeledToken) []string {
	res := make([]string, len(labeled))
	for i, l := range labeled {
		res[i] = l.Text
	}
	return res
}

// GetShape maps every rune of txt to 'd' (digit), 'X' (upper case) or 'x'.
func GetShape(txt string) string {
	var sb strings.Builder
	for _, r := range txt {
		switch {
		case unicode.IsDigit(r):
			sb.WriteRune('d')
		case unicode.IsUpper(r):
			sb.WriteRune('X')
		default:
			sb.WriteRune('x')
		}
	}

	return sb.String()
}
