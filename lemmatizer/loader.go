package lemmatizer

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/mortea15/juicer/types"
	"github.com/mortea15/juicer/utils"
)

// Dir is the lexicon directory inside a resource tree.
const Dir = "lemmatizer"

//go:embed data/*
var bundled embed.FS

var categoryFiles = map[Category]string{
	Noun:      "noun",
	Verb:      "verb",
	Adjective: "adj",
	Adverb:    "adv",
}

// Bundled returns the default lexicon laid out as a resource tree.
func Bundled() fs.FS {
	return bundledTree{}
}

// ResourceFiles lists the lexicon files, relative to a resource tree root.
func ResourceFiles() []string {
	var files []string
	for _, cat := range []Category{Noun, Verb, Adjective, Adverb} {
		name := categoryFiles[cat]
		files = append(files,
			path.Join(Dir, name+"_base.txt"),
			path.Join(Dir, name+"_exc.bsv"),
		)
		if cat != Adverb {
			files = append(files, path.Join(Dir, name+"_rule.bsv"))
		}
	}
	return files
}

// LoadRules reads the lexicon from fsys. Any missing or malformed file is
// reported as a resource error.
func LoadRules(fsys fs.FS) (*MorphologicalRules, error) {
	rules := NewMorphologicalRules()
	var err error

	for cat, name := range categoryFiles {
		prefix := path.Join(Dir, name)
		if rules.Bases[cat], err = utils.ReadFileWith(fsys, prefix+"_base.txt", utils.ReadSet); err != nil {
			return nil, resourceError(err)
		}
		if rules.Exceptions[cat], err = utils.ReadFileWith(fsys, prefix+"_exc.bsv", utils.ReadMap); err != nil {
			return nil, resourceError(err)
		}
		if cat == Adverb {
			continue
		}
		if rules.Suffixes[cat], err = utils.ReadFileWith(fsys, prefix+"_rule.bsv", utils.ReadPairs); err != nil {
			return nil, resourceError(err)
		}
	}

	return rules, nil
}

// Load builds an analyzer from the lexicon in fsys.
func Load(fsys fs.FS) (*MorphologicalAnalyzer, error) {
	rules, err := LoadRules(fsys)
	if err != nil {
		return nil, err
	}
	return NewMorphologicalAnalyzer(rules), nil
}

func resourceError(err error) error {
	return fmt.Errorf("%w: lemmatizer: %v", types.ErrResourceUnavailable, err)
}

// bundledTree exposes data/<file> as lemmatizer/<file>.
type bundledTree struct{}

func (bundledTree) Open(name string) (fs.File, error) {
	dir, file := path.Split(name)
	if path.Clean(dir) != Dir {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return bundled.Open(path.Join("data", file))
}
