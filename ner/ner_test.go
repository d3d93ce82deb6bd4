package ner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortea15/juicer/types"
)

func TestNamedOnly(t *testing.T) {
	labeled := []types.LabeledToken{
		{Text: "Morten", Label: "PERSON"},
		{Text: "visited", Label: "O"},
		{Text: "Oslo", Label: "LOCATION"},
	}

	assert.Equal(t, []types.LabeledToken{
		{Text: "Morten", Label: "PERSON"},
		{Text: "Oslo", Label: "LOCATION"},
	}, NamedOnly(labeled))

	allOutside := []types.LabeledToken{{Text: "a", Label: "O"}, {Text: "b", Label: string([]byte{'O'})}}
	assert.Empty(t, NamedOnly(allOutside))
}

func TestParseSlashTags(t *testing.T) {
	res := ParseSlashTags("Morten/PERSON works/O at/O Sportradar/ORGANIZATION 1/2/O\n")

	expected := []types.LabeledToken{
		{Text: "Morten", Label: "PERSON"},
		{Text: "works", Label: "O"},
		{Text: "at", Label: "O"},
		{Text: "Sportradar", Label: "ORGANIZATION"},
		{Text: "1/2", Label: "O"},
	}
	if diff := cmp.Diff(expected, res); diff != "" {
		t.Errorf("unexpected labels (-want +got):\n%s", diff)
	}
	assert.Empty(t, ParseSlashTags(""))
}

func TestStanfordMissingArtifacts(t *testing.T) {
	c := NewStanfordClassifier(StanfordConfig{BasePath: t.TempDir()}, zerolog.Nop())

	_, err := c.Classify(context.Background(), []string{"Oslo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExternalToolUnavailable))
}

func fakeStanfordTree(t *testing.T, script string) StanfordConfig {
	if runtime.GOOS == "windows" {
		t.Skip("stub classifier is a shell script")
	}
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "classifiers"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ClassifierModel), []byte("model"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ClassifierJar), []byte("jar"), 0o644))

	java := filepath.Join(dir, "java")
	require.NoError(t, os.WriteFile(java, []byte(script), 0o755))
	return StanfordConfig{BasePath: dir, Java: java}
}

func TestStanfordSubprocess(t *testing.T) {
	cfg := fakeStanfordTree(t, `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-textFile" ]; then f="$2"; fi
  shift
done
for w in $(cat "$f"); do
  if [ "$w" = "Oslo" ]; then printf '%s/LOCATION ' "$w"; else printf '%s/O ' "$w"; fi
done
`)
	c := NewStanfordClassifier(cfg, zerolog.Nop())

	res, err := c.Classify(context.Background(), []string{"Morten", "visited", "Oslo"})
	require.NoError(t, err)
	assert.Equal(t, []types.LabeledToken{
		{Text: "Morten", Label: "O"},
		{Text: "visited", Label: "O"},
		{Text: "Oslo", Label: "LOCATION"},
	}, res)
}

func TestStanfordSubprocessFailure(t *testing.T) {
	cfg := fakeStanfordTree(t, "#!/bin/sh\necho 'Could not find main class' >&2\nexit 1\n")
	c := NewStanfordClassifier(cfg, zerolog.Nop())

	_, err := c.Classify(context.Background(), []string{"Oslo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExternalToolUnavailable))
	assert.Contains(t, err.Error(), "Could not find main class")
}

func TestStanfordLabelCountMismatch(t *testing.T) {
	cfg := fakeStanfordTree(t, "#!/bin/sh\nprintf 'Morten/PERSON visited/O'\n")
	c := NewStanfordClassifier(cfg, zerolog.Nop())

	res, err := c.Classify(context.Background(), []string{"Morten", "visited", "Oslo"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, types.ErrExternalToolUnavailable))
	assert.Contains(t, err.Error(), "2 labels for 3 tokens")
}

func TestStanfordEmptyInput(t *testing.T) {
	cfg := fakeStanfordTree(t, "#!/bin/sh\nexit 1\n")
	c := NewStanfordClassifier(cfg, zerolog.Nop())

	res, err := c.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestStripIOB(t *testing.T) {
	assert.Equal(t, "PERSON", stripIOB("B-PERSON"))
	assert.Equal(t, "GPE", stripIOB("I-GPE"))
	assert.Equal(t, "O", stripIOB("O"))
	assert.Equal(t, "O", stripIOB(""))
}

func TestProseClassifierPreservesTokens(t *testing.T) {
	tokens := []string{"Barack", "Obama", "visited", "Paris"}

	res, err := NewProseClassifier().Classify(context.Background(), tokens)
	require.NoError(t, err)
	require.Len(t, res, len(tokens))
	assert.Equal(t, tokens, types.LabeledTexts(res))
	for _, r := range res {
		assert.NotEmpty(t, r.Label)
	}
}

type memoryStore struct {
	data      map[string][]byte
	locks     int
	lockErr   error
	getCalled int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.getCalled++
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memoryStore) Lock(_ context.Context, _ string) (func() error, error) {
	if m.lockErr != nil {
		return nil, m.lockErr
	}
	m.locks++
	return func() error { return nil }, nil
}

type countingClassifier struct {
	calls int
}

func (c *countingClassifier) Name() string { return "counting" }

func (c *countingClassifier) Classify(_ context.Context, tokens []string) ([]types.LabeledToken, error) {
	c.calls++
	res := make([]types.LabeledToken, len(tokens))
	for i, tok := range tokens {
		res[i] = types.LabeledToken{Text: tok, Label: "PERSON"}
	}
	return res, nil
}

func TestCachedClassifier(t *testing.T) {
	inner := &countingClassifier{}
	store := newMemoryStore()
	c := NewCachedClassifier(inner, store, zerolog.Nop())
	tokens := []string{"Morten", "Amundsen"}

	first, err := c.Classify(context.Background(), tokens)
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), tokens)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, store.locks)
	assert.Contains(t, store.data, CacheKey("counting", tokens))
	assert.Equal(t, "counting", c.Name())
}

func TestCachedClassifierLockFailure(t *testing.T) {
	inner := &countingClassifier{}
	store := newMemoryStore()
	store.lockErr = errors.New("redis down")
	c := NewCachedClassifier(inner, store, zerolog.Nop())

	res, err := c.Classify(context.Background(), []string{"Oslo"})
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, inner.calls)
	assert.Empty(t, store.data)
}

func TestCachedClassifierSkipsMisalignedOutput(t *testing.T) {
	cfg := fakeStanfordTree(t, "#!/bin/sh\nprintf 'Oslo/LOCATION'\n")
	store := newMemoryStore()
	c := NewCachedClassifier(NewStanfordClassifier(cfg, zerolog.Nop()), store, zerolog.Nop())

	_, err := c.Classify(context.Background(), []string{"Morten", "visited", "Oslo"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExternalToolUnavailable))
	assert.Empty(t, store.data)
}
