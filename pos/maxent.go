package pos

import (
	"fmt"

	"github.com/mortea15/juicer/types"
)

const beamSize = 3

// MaxentTagger tags with a maximum-entropy model and beam search. It is the
// alternative to the bundled perceptron when a tagger_model is configured.
type MaxentTagger struct {
	search *BeamSearch
}

func NewMaxentTagger(model Model) *MaxentTagger {
	known := make(map[string]bool, len(model.TagDictionary))
	for w := range model.TagDictionary {
		known[w] = true
	}

	return &MaxentTagger{
		search: NewBeamSearch(model, beamSize, NewContextGenerator(known), NewSequenceValidator(model.TagDictionary)),
	}
}

// LoadMaxentTagger reads a JSON model from disk.
func LoadMaxentTagger(modelPath string) (*MaxentTagger, error) {
	model, err := LoadModelFromFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: tagger model %s: %v", types.ErrResourceUnavailable, modelPath, err)
	}
	if len(model.Outcomes) == 0 || model.EvalParams.NumOfOutcomes != len(model.Outcomes) {
		return nil, fmt.Errorf("%w: tagger model %s has inconsistent outcomes", types.ErrResourceUnavailable, modelPath)
	}
	return NewMaxentTagger(model), nil
}

// Tag returns one pair per token. If the search fails every token is tagged
// with an empty tag so the length contract still holds.
func (t *MaxentTagger) Tag(tokens []string) []types.TaggedToken {
	res := make([]types.TaggedToken, len(tokens))
	for i, tok := range tokens {
		res[i].Text = tok
	}
	if len(tokens) == 0 {
		return res
	}

	best, isOk := t.search.Best(tokens)
	if !isOk {
		return res
	}
	for i, tag := range best.Outcomes {
		res[i].Tag = tag
	}
	return res
}
