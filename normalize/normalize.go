// Package normalize reduces tagged tokens to canonical forms, either by
// dictionary lemmatization or by Porter stemming.
package normalize

import (
	porterstemmer "github.com/reiver/go-porterstemmer"
	"github.com/rs/zerolog"

	"github.com/mortea15/juicer/lemmatizer"
	"github.com/mortea15/juicer/types"
	"github.com/mortea15/juicer/utils"
)

type Mode int

const (
	Lemmatize Mode = iota
	Stem
)

func ModeFor(stemming bool) Mode {
	if stemming {
		return Stem
	}
	return Lemmatize
}

// StemFunc stems one word.
type StemFunc func(word string) string

type Normalizer struct {
	analyzer *lemmatizer.MorphologicalAnalyzer
	stem     StemFunc
	log      zerolog.Logger
}

func New(analyzer *lemmatizer.MorphologicalAnalyzer, log zerolog.Logger) *Normalizer {
	return &Normalizer{
		analyzer: analyzer,
		stem:     porterstemmer.StemString,
		log:      log,
	}
}

// WithStemmer replaces the stemming function.
func (n *Normalizer) WithStemmer(stem StemFunc) *Normalizer {
	res := *n
	res.stem = stem
	return &res
}

// Normalize returns exactly one NormalizedToken per input token, in order.
func (n *Normalizer) Normalize(tagged []types.TaggedToken, mode Mode) []types.NormalizedToken {
	if mode == Stem {
		return n.stemAll(tagged)
	}
	return n.lemmatizeAll(tagged)
}

func (n *Normalizer) lemmatizeAll(tagged []types.TaggedToken) []types.NormalizedToken {
	res := make([]types.NormalizedToken, len(tagged))
	for i, t := range tagged {
		lemma, resolved := n.analyzer.LemmaForTag(t.Text, t.Tag)
		if !resolved {
			n.log.Debug().Str("word", t.Text).Str("tag", t.Tag).Msg("No lemma found, passing word through")
		}
		res[i] = types.NormalizedToken{Text: t.Text, Tag: t.Tag, Form: lemma, Resolved: resolved}
	}
	return res
}

// stemAll falls back to the raw text of every token when stemming fails.
func (n *Normalizer) stemAll(tagged []types.TaggedToken) []types.NormalizedToken {
	res, err := n.tryStem(tagged)
	if err == nil {
		return res
	}

	n.log.Error().Err(err).Msg("Stemming failed, returning raw tokens")
	res = make([]types.NormalizedToken, len(tagged))
	for i, t := range tagged {
		res[i] = types.NormalizedToken{Text: t.Text, Tag: t.Tag, Form: t.Text}
	}
	return res
}

func (n *Normalizer) tryStem(tagged []types.TaggedToken) (res []types.NormalizedToken, err error) {
	defer utils.RecoverWithError(&err)

	res = make([]types.NormalizedToken, len(tagged))
	for i, t := range tagged {
		res[i] = types.NormalizedToken{Text: t.Text, Tag: t.Tag, Form: n.stem(t.Text), Resolved: true}
	}
	return res, nil
}

// Unresolved lists the tokens the normalizer passed through unchanged.
func Unresolved(normalized []types.NormalizedToken) []string {
	res := make([]string, 0)
	for _, t := range normalized {
		if !t.Resolved {
			res = append(res, t.Text)
		}
	}
	return res
}
