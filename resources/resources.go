// Package resources locates the linguistic resources the pipeline needs and
// restores missing ones into the data directory.
package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mortea15/juicer/lemmatizer"
	"github.com/mortea15/juicer/stopwords"
	"github.com/mortea15/juicer/types"
)

const DefaultDataPath = ".juicer_data"

// Required lists every resource file, relative to the data directory.
func Required() []string {
	return append([]string{stopwords.FileName}, lemmatizer.ResourceFiles()...)
}

// Bundled returns the resources compiled into the binary.
func Bundled() fs.FS {
	return overlay{stopwords.Bundled(), lemmatizer.Bundled()}
}

// Open returns the data directory with the bundled resources underneath:
// files present in dataPath win.
func Open(dataPath string) fs.FS {
	if dataPath == "" {
		return Bundled()
	}
	return overlay{os.DirFS(dataPath), stopwords.Bundled(), lemmatizer.Bundled()}
}

// overlay opens name from the first layer that has it.
type overlay []fs.FS

func (o overlay) Open(name string) (fs.File, error) {
	var lastErr error = &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	for _, layer := range o {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Fetcher retrieves a resource by its relative name.
type Fetcher interface {
	Fetch(name string) ([]byte, error)
}

// BundledFetcher serves resources from the binary.
type BundledFetcher struct{}

func (BundledFetcher) Fetch(name string) ([]byte, error) {
	return fs.ReadFile(Bundled(), name)
}

type Checker struct {
	dataPath string
	fetcher  Fetcher
	log      zerolog.Logger
}

func NewChecker(dataPath string, fetcher Fetcher, log zerolog.Logger) *Checker {
	if dataPath == "" {
		dataPath = DefaultDataPath
	}
	return &Checker{dataPath: dataPath, fetcher: fetcher, log: log}
}

// Check makes sure every required resource exists under the data
// directory, fetching missing ones. A failed fetch is logged and the check
// goes on; the returned error lists what is still missing.
func (c *Checker) Check() ([]string, error) {
	fetched := make([]string, 0)
	var missing []string

	for _, name := range Required() {
		target := filepath.Join(c.dataPath, filepath.FromSlash(name))
		if _, err := os.Stat(target); err == nil {
			c.log.Debug().Str("resource", name).Msg("Resource present")
			continue
		}

		c.log.Error().Str("resource", name).Msg("Unable to find resource")
		c.log.Info().Str("resource", name).Msg("Downloading resource")
		if err := c.fetch(name, target); err != nil {
			c.log.Error().Err(err).Str("resource", name).Msg("An error occurred while downloading resource")
			missing = append(missing, name)
			continue
		}
		fetched = append(fetched, name)
	}

	if len(missing) > 0 {
		return fetched, fmt.Errorf("%w: missing resources %v", types.ErrResourceUnavailable, missing)
	}
	return fetched, nil
}

func (c *Checker) fetch(name string, target string) error {
	buf, err := c.fetcher.Fetch(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, buf, 0o644)
}
