package stopwords

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortea15/juicer/types"
)

func defaultFilter(t *testing.T) *Filter {
	f, err := Load(Bundled())
	require.NoError(t, err)
	return f
}

func TestFilterSentence(t *testing.T) {
	f := defaultFilter(t)

	tokens := []string{"The", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog", "."}
	assert.Equal(t, []string{"quick", "brown", "fox", "jumps", "lazy", "dog"}, f.Filter(tokens))
}

func TestFilterIsCaseSensitive(t *testing.T) {
	f := defaultFilter(t)

	assert.True(t, f.IsStop("the"))
	assert.True(t, f.IsStop("The"))
	assert.False(t, f.IsStop("THE"))
	assert.True(t, f.IsStop(","))
	assert.False(t, f.IsStop("fox"))
}

func TestFilterIdempotent(t *testing.T) {
	f := defaultFilter(t)

	inputs := [][]string{
		{},
		{"a", "b", "c"},
		{"Over", "the", "rainbow", "!", "birds", "fly", "."},
		{"don't", "stop", "me", "now"},
	}
	for _, in := range inputs {
		once := f.Filter(in)
		assert.Equal(t, once, f.Filter(once))
	}
}

func TestFilterEmpty(t *testing.T) {
	f := defaultFilter(t)

	res := f.Filter(nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestWith(t *testing.T) {
	f := defaultFilter(t)
	extended := f.With([]string{"fox"})

	assert.True(t, extended.IsStop("fox"))
	assert.True(t, extended.IsStop("Fox"))
	assert.False(t, f.IsStop("fox"))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrResourceUnavailable))
}
