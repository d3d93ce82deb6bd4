package types

import "strings"

// ChunkLabel marks spans produced by the grammar chunker.
const ChunkLabel = "NE"

// EntitySpan is a contiguous run of tagged tokens grouped under one label.
type EntitySpan struct {
	Label  string        `json:"label"`
	Tokens []TaggedToken `json:"tokens"`
	// Begin and End index the tokens of the sentence the span came from.
	Begin int `json:"begin"`
	End   int `json:"end"`
}

func (span EntitySpan) Text() string {
	return strings.Join(Texts(span.Tokens), " ")
}

func (span EntitySpan) Len() int {
	return len(span.Tokens)
}

func SpanTexts(spans []EntitySpan) []string {
	res := make([]string, len(spans))
	for i, s := range spans {
		res[i] = s.Text()
	}
	return res
}
