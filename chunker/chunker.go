// Package chunker groups POS-tagged tokens into named-entity chunks with the
// Treebank named-entity grammar.
package chunker

import (
	"regexp"

	"github.com/jdkato/prose/chunk"
	"github.com/jdkato/prose/tag"

	"github.com/mortea15/juicer/types"
)

type Chunker struct {
	grammar *regexp.Regexp
	label   string
}

func New() *Chunker {
	return &Chunker{grammar: chunk.TreebankNamedEntities, label: types.ChunkLabel}
}

// NewWithGrammar uses a custom tag grammar. The regexp is matched against
// tags padded to four characters, as prose does.
func NewWithGrammar(grammar *regexp.Regexp, label string) *Chunker {
	return &Chunker{grammar: grammar, label: label}
}

// Chunk returns the labeled spans of one tagged sentence, in order.
func (c *Chunker) Chunk(tagged []types.TaggedToken) []types.EntitySpan {
	spans := make([]types.EntitySpan, 0)
	if len(tagged) == 0 {
		return spans
	}

	tokens := make([]tag.Token, len(tagged))
	for i, t := range tagged {
		tokens[i] = tag.Token{Text: t.Text, Tag: t.Tag}
	}

	for _, loc := range chunk.Locate(tokens, c.grammar) {
		begin, end := loc[0], loc[1]
		if begin >= end || end > len(tagged) {
			continue
		}

		span := types.EntitySpan{
			Label:  c.label,
			Tokens: make([]types.TaggedToken, end-begin),
			Begin:  begin,
			End:    end,
		}
		copy(span.Tokens, tagged[begin:end])
		spans = append(spans, span)
	}
	return spans
}
