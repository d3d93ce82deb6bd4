package resources

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortea15/juicer/lemmatizer"
	"github.com/mortea15/juicer/stopwords"
	"github.com/mortea15/juicer/types"
)

type failingFetcher struct {
	fail map[string]bool
}

func (f failingFetcher) Fetch(name string) ([]byte, error) {
	if f.fail[name] {
		return nil, errors.New("access denied")
	}
	return BundledFetcher{}.Fetch(name)
}

func TestCheckFetchesMissing(t *testing.T) {
	dir := t.TempDir()
	c := NewChecker(dir, BundledFetcher{}, zerolog.Nop())

	fetched, err := c.Check()
	require.NoError(t, err)
	assert.ElementsMatch(t, Required(), fetched)

	for _, name := range Required() {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}

	fetched, err = c.Check()
	require.NoError(t, err)
	assert.Empty(t, fetched)
}

func TestCheckReportsFailures(t *testing.T) {
	dir := t.TempDir()
	c := NewChecker(dir, failingFetcher{fail: map[string]bool{stopwords.FileName: true}}, zerolog.Nop())

	fetched, err := c.Check()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrResourceUnavailable))
	assert.Len(t, fetched, len(Required())-1)
}

func TestOpenPrefersDataDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stopwords.FileName), []byte("fox\n"), 0o644))

	fsys := Open(dir)
	buf, err := fs.ReadFile(fsys, stopwords.FileName)
	require.NoError(t, err)
	assert.Equal(t, "fox\n", string(buf))

	_, err = lemmatizer.Load(fsys)
	require.NoError(t, err)

	_, err = fsys.Open("nothing.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBundledHasEverything(t *testing.T) {
	for _, name := range Required() {
		_, err := fs.Stat(Bundled(), name)
		assert.NoError(t, err, name)
	}
}
