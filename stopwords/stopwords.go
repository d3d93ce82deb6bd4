// Package stopwords removes English stopwords and punctuation from a token
// sequence.
package stopwords

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mortea15/juicer/types"
	"github.com/mortea15/juicer/utils"
)

// FileName is the stopword list inside a resource directory.
const FileName = "stopwords.txt"

// Punctuation is the ASCII punctuation set; each character is a stop token.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

//go:embed data/stopwords.txt
var bundled embed.FS

// Bundled returns the stopword list shipped with the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Filter holds a case-sensitive stop set. Every listed word is also stopped
// in its sentence-initial, title-cased form.
type Filter struct {
	stops map[string]bool
}

func NewFilter(words []string) *Filter {
	f := &Filter{stops: make(map[string]bool, 2*len(words)+len(Punctuation))}
	for _, r := range Punctuation {
		f.stops[string(r)] = true
	}
	f.add(words)
	return f
}

// Load reads the stopword list from fsys.
func Load(fsys fs.FS) (*Filter, error) {
	words, err := utils.ReadFileWith(fsys, FileName, utils.ReadList)
	if err != nil {
		return nil, fmt.Errorf("%w: stopwords: %v", types.ErrResourceUnavailable, err)
	}
	return NewFilter(words), nil
}

// With returns a copy of the filter extended with extra words.
func (f *Filter) With(extra []string) *Filter {
	res := &Filter{stops: make(map[string]bool, len(f.stops)+2*len(extra))}
	for w := range f.stops {
		res.stops[w] = true
	}
	res.add(extra)
	return res
}

func (f *Filter) IsStop(token string) bool {
	return f.stops[token]
}

// Filter returns the tokens that are not stops, in input order.
func (f *Filter) Filter(tokens []string) []string {
	res := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !f.IsStop(t) {
			res = append(res, t)
		}
	}
	return res
}

func (f *Filter) Len() int {
	return len(f.stops)
}

func (f *Filter) add(words []string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		f.stops[w] = true
		f.stops[titleCase(w)] = true
	}
}

func titleCase(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
