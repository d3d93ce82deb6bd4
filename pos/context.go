package pos

import (
	"strings"
	"unicode"

	"github.com/mortea15/juicer/types"
)

const (
	prefixLength = 4
	suffixLength = 4

	sentenceBegin = "*SB*"
	sentenceEnd   = "*SE*"
)

// ContextGenerator builds the predicates the maxent model scores for the
// token at index, given the tags already decided for earlier tokens.
type ContextGenerator interface {
	GetContext(index int, tokens []string, priorTags []string) []string
}

type defaultContextGenerator struct {
	known map[string]bool
}

func NewContextGenerator(known map[string]bool) ContextGenerator {
	return &defaultContextGenerator{known: known}
}

func (g *defaultContextGenerator) GetContext(index int, tokens []string, tags []string) []string {
	lex := tokens[index]

	next, nextnext := sentenceEnd, ""
	if index+1 < len(tokens) {
		next = tokens[index+1]
		nextnext = sentenceEnd
		if index+2 < len(tokens) {
			nextnext = tokens[index+2]
		}
	}

	prev, prevprev := sentenceBegin, ""
	var tagprev, tagprevprev string
	if index > 0 {
		prev = tokens[index-1]
		prevprev = sentenceBegin
		tagprev = tags[index-1]
		if index >= 2 {
			prevprev = tokens[index-2]
			tagprevprev = tags[index-2]
		}
	}

	contexts := []string{"default", "w=" + lex}

	if !g.known[lex] {
		for _, suf := range affixes(lex, suffixLength, false) {
			contexts = append(contexts, "suf="+suf)
		}
		for _, pref := range affixes(lex, prefixLength, true) {
			contexts = append(contexts, "pre="+pref)
		}

		if strings.ContainsRune(lex, '-') {
			contexts = append(contexts, "h")
		}

		shape := types.GetShape(lex)
		if strings.ContainsRune(shape, 'X') {
			contexts = append(contexts, "c")
		}
		if strings.IndexFunc(lex, unicode.IsDigit) >= 0 {
			contexts = append(contexts, "d")
		}
	}

	contexts = append(contexts, "p="+prev)
	if tagprev != "" {
		contexts = append(contexts, "t="+tagprev)
	}
	if prevprev != "" {
		contexts = append(contexts, "pp="+prevprev)
		if tagprevprev != "" {
			contexts = append(contexts, "t2="+tagprevprev+","+tagprev)
		}
	}

	contexts = append(contexts, "n="+next)
	if nextnext != "" {
		contexts = append(contexts, "nn="+nextnext)
	}

	return contexts
}

// affixes returns the first (prefix) or last n affixes of lex, growing one
// rune at a time and saturating at the whole word.
func affixes(lex string, n int, prefix bool) []string {
	runes := []rune(lex)
	res := make([]string, n)
	for i := 0; i < n; i++ {
		size := i + 1
		if size > len(runes) {
			size = len(runes)
		}
		if prefix {
			res[i] = string(runes[:size])
		} else {
			res[i] = string(runes[len(runes)-size:])
		}
	}
	return res
}
