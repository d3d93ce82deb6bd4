package pos

import (
	"github.com/jdkato/prose/tag"

	"github.com/mortea15/juicer/types"
)

// Tagger assigns one part-of-speech tag to every token, keeping order.
type Tagger interface {
	Tag(tokens []string) []types.TaggedToken
}

// PerceptronTagger wraps the averaged perceptron model bundled with prose.
type PerceptronTagger struct {
	tagger *tag.PerceptronTagger
}

func NewPerceptronTagger() *PerceptronTagger {
	return &PerceptronTagger{tagger: tag.NewPerceptronTagger()}
}

func (p *PerceptronTagger) Tag(tokens []string) []types.TaggedToken {
	res := make([]types.TaggedToken, 0, len(tokens))
	if len(tokens) == 0 {
		return res
	}

	for _, tok := range p.tagger.Tag(tokens) {
		res = append(res, types.TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return res
}
