// Package tokenizer splits raw text into sentences and word tokens using
// the Punkt sentence model and the Treebank word rules from prose.
package tokenizer

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
)

type Tokenizer struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
}

func New() *Tokenizer {
	return &Tokenizer{
		sentences: tokenize.NewPunktSentenceTokenizer(),
		words:     tokenize.NewTreebankWordTokenizer(),
	}
}

// Sentences splits text into sentences. Blank text yields no sentences.
func (t *Tokenizer) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	res := make([]string, 0)
	for _, sent := range t.sentences.Tokenize(text) {
		if sent = strings.TrimSpace(sent); sent != "" {
			res = append(res, sent)
		}
	}
	return res
}

// Words tokenizes text sentence by sentence and concatenates the tokens in
// source order.
func (t *Tokenizer) Words(text string) []string {
	res := make([]string, 0)
	for _, sent := range t.Sentences(text) {
		res = append(res, t.SentenceWords(sent)...)
	}
	return res
}

// SentenceWords tokenizes a single sentence.
func (t *Tokenizer) SentenceWords(sentence string) []string {
	res := make([]string, 0)
	for _, w := range t.words.Tokenize(sentence) {
		if w != "" {
			res = append(res, w)
		}
	}
	return res
}
