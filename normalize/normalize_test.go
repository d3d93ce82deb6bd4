package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortea15/juicer/lemmatizer"
	"github.com/mortea15/juicer/types"
)

func newNormalizer(t *testing.T) *Normalizer {
	a, err := lemmatizer.Load(lemmatizer.Bundled())
	require.NoError(t, err)
	return New(a, zerolog.Nop())
}

var sample = []types.TaggedToken{
	{Text: "quick", Tag: "JJ"},
	{Text: "brown", Tag: "JJ"},
	{Text: "foxes", Tag: "NNS"},
	{Text: "running", Tag: "VBG"},
	{Text: "Kristiansand", Tag: "NNP"},
}

func TestLemmatize(t *testing.T) {
	n := newNormalizer(t)

	res := n.Normalize([]types.TaggedToken{{Text: "running", Tag: "VBG"}, {Text: "cats", Tag: "NNS"}}, Lemmatize)
	assert.Equal(t, []string{"run", "cat"}, types.Forms(res))
}

func TestLemmatizeSentence(t *testing.T) {
	n := newNormalizer(t)

	tagged := []types.TaggedToken{
		{Text: "Researchers", Tag: "NNS"},
		{Text: "studied", Tag: "VBD"},
		{Text: "proteins", Tag: "NNS"},
		{Text: "and", Tag: "CC"},
		{Text: "published", Tag: "VBD"},
		{Text: "their", Tag: "PRP$"},
		{Text: "findings", Tag: "NNS"},
		{Text: "in", Tag: "IN"},
		{Text: "journals", Tag: "NNS"},
		{Text: "while", Tag: "IN"},
		{Text: "engineers", Tag: "NNS"},
		{Text: "harvested", Tag: "VBD"},
		{Text: "samples", Tag: "NNS"},
		{Text: "from", Tag: "IN"},
		{Text: "bridges", Tag: "NNS"},
	}

	res := n.Normalize(tagged, Lemmatize)
	expected := []string{
		"Researcher", "study", "protein", "and", "publish", "their", "finding", "in",
		"journal", "while", "engineer", "harvest", "sample", "from", "bridge",
	}
	if diff := cmp.Diff(expected, types.Forms(res)); diff != "" {
		t.Errorf("lemmas mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Unresolved(res))
}

func TestLemmatizeFallbackIsMarked(t *testing.T) {
	n := newNormalizer(t)

	res := n.Normalize(sample, Lemmatize)
	require.Len(t, res, len(sample))
	assert.Equal(t, "Kristiansand", res[4].Form)
	assert.False(t, res[4].Resolved)
	assert.Equal(t, []string{"Kristiansand"}, Unresolved(res))
}

func TestLengthAndOrderPreserved(t *testing.T) {
	n := newNormalizer(t)

	for _, mode := range []Mode{Lemmatize, Stem} {
		res := n.Normalize(sample, mode)
		require.Len(t, res, len(sample))
		for i := range sample {
			assert.Equal(t, sample[i].Text, res[i].Text)
		}
	}
}

func TestStem(t *testing.T) {
	n := newNormalizer(t)

	res := n.Normalize([]types.TaggedToken{{Text: "running", Tag: "VBG"}, {Text: "cats", Tag: "NNS"}}, Stem)
	assert.Equal(t, []string{"run", "cat"}, types.Forms(res))
}

func TestStemFailureFallsBackToRawTokens(t *testing.T) {
	n := newNormalizer(t).WithStemmer(func(word string) string {
		if word == "running" {
			panic("stemmer exploded")
		}
		return "x"
	})

	res := n.Normalize(sample, Stem)
	assert.Equal(t, types.Texts(sample), types.Forms(res))
	for _, r := range res {
		assert.False(t, r.Resolved)
	}
}

func TestEmpty(t *testing.T) {
	n := newNormalizer(t)

	assert.Empty(t, n.Normalize(nil, Lemmatize))
	assert.Empty(t, n.Normalize([]types.TaggedToken{}, Stem))
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, Stem, ModeFor(true))
	assert.Equal(t, Lemmatize, ModeFor(false))
}
