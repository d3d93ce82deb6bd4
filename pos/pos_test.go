package pos

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortea15/juicer/types"
)

func testModel() Model {
	return Model{
		Probs:    []float64{0, 0},
		Outcomes: []string{"NN", "VB"},
		PMap:     map[string]int{"w=run": 0, "w=dog": 1},
		EvalParams: EvalParameters{
			NumOfOutcomes: 2,
			Params: []Context{
				{Outcomes: []int{1}, Parameters: []float64{5}},
				{Outcomes: []int{0}, Parameters: []float64{5}},
			},
		},
	}
}

func TestWhitelist(t *testing.T) {
	tagged := []types.TaggedToken{
		{Text: "The", Tag: "DT"},
		{Text: "dogs", Tag: "NNS"},
		{Text: "quickly", Tag: "RB"},
		{Text: "ran", Tag: "VBD"},
		{Text: "home", Tag: "NN"},
		{Text: ".", Tag: "."},
	}

	res := Whitelist(tagged)
	assert.Equal(t, []types.TaggedToken{
		{Text: "dogs", Tag: "NNS"},
		{Text: "ran", Tag: "VBD"},
		{Text: "home", Tag: "NN"},
	}, res)
	for _, tok := range res {
		assert.True(t, NounVerbWhitelist[tok.Tag])
	}
	assert.Empty(t, Whitelist(nil))
}

func TestMaxentTagger(t *testing.T) {
	tagger := NewMaxentTagger(testModel())

	res := tagger.Tag([]string{"dog", "run"})
	assert.Equal(t, []types.TaggedToken{{Text: "dog", Tag: "NN"}, {Text: "run", Tag: "VB"}}, res)
	assert.Empty(t, tagger.Tag([]string{}))
}

func TestMaxentTaggerTagDictionary(t *testing.T) {
	model := testModel()
	model.TagDictionary = map[string][]string{"dog": {"VB"}}
	tagger := NewMaxentTagger(model)

	res := tagger.Tag([]string{"dog"})
	assert.Equal(t, "VB", res[0].Tag)
}

func TestLoadMaxentTagger(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	buf, err := json.Marshal(testModel())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(modelPath, buf, 0o644))

	tagger, err := LoadMaxentTagger(modelPath)
	require.NoError(t, err)
	assert.Len(t, tagger.Tag([]string{"a", "b", "c"}), 3)

	_, err = LoadMaxentTagger(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, types.ErrResourceUnavailable))
}

func TestPerceptronTaggerPreservesLength(t *testing.T) {
	tagger := NewPerceptronTagger()

	tokens := []string{"Mark", "eats", "green", "apples", "."}
	res := tagger.Tag(tokens)
	require.Len(t, res, len(tokens))
	assert.Equal(t, tokens, types.Texts(res))
	assert.Empty(t, tagger.Tag(nil))
}

func TestTagFiltered(t *testing.T) {
	tagger := NewMaxentTagger(testModel())

	assert.Len(t, TagFiltered(tagger, []string{"dog", "run"}, false), 2)
	assert.Len(t, TagFiltered(tagger, []string{"dog", "run"}, true), 2)
}
