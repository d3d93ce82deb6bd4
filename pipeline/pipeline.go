// Package pipeline sequences tokenization, stopword removal, tagging,
// normalization and entity extraction over a single text.
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mortea15/juicer/chunker"
	"github.com/mortea15/juicer/lemmatizer"
	"github.com/mortea15/juicer/logger"
	"github.com/mortea15/juicer/ner"
	"github.com/mortea15/juicer/normalize"
	"github.com/mortea15/juicer/pos"
	"github.com/mortea15/juicer/stopwords"
	"github.com/mortea15/juicer/tokenizer"
	"github.com/mortea15/juicer/types"
)

type Params struct {
	Tokenizer  *tokenizer.Tokenizer
	Stopwords  *stopwords.Filter
	Tagger     pos.Tagger
	Normalizer *normalize.Normalizer
	Chunker    *chunker.Chunker
	Classifier ner.Classifier
	Logger     zerolog.Logger
}

// GetDefaultParams loads every stage from the resource tree. The classifier
// is passed in because its backend depends on the environment.
func GetDefaultParams(resourceFS fs.FS, cfg types.Configuration, classifier ner.Classifier, log zerolog.Logger) (Params, error) {
	stops, err := stopwords.Load(resourceFS)
	if err != nil {
		return Params{}, err
	}
	if len(cfg.ExtraStopwords) > 0 {
		stops = stops.With(cfg.ExtraStopwords)
	}

	analyzer, err := lemmatizer.Load(resourceFS)
	if err != nil {
		return Params{}, err
	}

	var tagger pos.Tagger
	if cfg.TaggerModel != "" {
		if tagger, err = pos.LoadMaxentTagger(cfg.TaggerModel); err != nil {
			return Params{}, err
		}
	} else {
		tagger = pos.NewPerceptronTagger()
	}

	return Params{
		Tokenizer:  tokenizer.New(),
		Stopwords:  stops,
		Tagger:     tagger,
		Normalizer: normalize.New(analyzer, logger.Component(log, "Normalizer")),
		Chunker:    chunker.New(),
		Classifier: classifier,
		Logger:     log,
	}, nil
}

type Pipeline struct {
	Params
	log zerolog.Logger
}

func New(params Params) *Pipeline {
	return &Pipeline{
		Params: params,
		log:    logger.Component(params.Logger, "Pipeline"),
	}
}

// RemoveStopwords tokenizes text and drops stopwords and punctuation.
func (p *Pipeline) RemoveStopwords(text string) []string {
	return p.Stopwords.Filter(p.Tokenizer.Words(text))
}

// SpeechTag tokenizes and tags text, optionally keeping nouns and verbs only.
func (p *Pipeline) SpeechTag(text string, whitelisted bool) []types.TaggedToken {
	return pos.TagFiltered(p.Tagger, p.Tokenizer.Words(text), whitelisted)
}

// Lemmatize normalizes every token of text without removing stopwords.
func (p *Pipeline) Lemmatize(text string, cfg types.Configuration) []types.NormalizedToken {
	tagged := p.SpeechTag(text, cfg.Whitelisted)
	return p.Normalizer.Normalize(tagged, normalize.ModeFor(cfg.Stemming))
}

// Preprocess runs stopword removal, tagging and normalization.
func (p *Pipeline) Preprocess(text string, cfg types.Configuration) []types.NormalizedToken {
	p.log.Debug().Str("text", text).Msg("Pre")

	nostops := p.RemoveStopwords(text)
	p.log.Debug().Strs("tokens", nostops).Msg("No stops")

	tagged := pos.TagFiltered(p.Tagger, nostops, cfg.Whitelisted)
	p.log.Debug().Int("tagged", len(tagged)).Msg("Tagged")

	normalized := p.Normalizer.Normalize(tagged, normalize.ModeFor(cfg.Stemming))
	p.log.Debug().Strs("forms", types.Forms(normalized)).Msg("Normalized")
	return normalized
}

// Extract preprocesses text, then chunks the result sentence by sentence.
func (p *Pipeline) Extract(text string, cfg types.Configuration) []types.EntitySpan {
	joined := strings.Join(types.Forms(p.Preprocess(text, cfg)), " ")

	entities := make([]types.EntitySpan, 0)
	for _, sentence := range p.tagSentences(joined, cfg.Whitelisted) {
		entities = append(entities, p.Chunker.Chunk(sentence.Tokens)...)
	}
	p.log.Debug().Strs("entities", types.SpanTexts(entities)).Msg("Chunked")
	return entities
}

func (p *Pipeline) tagSentences(text string, whitelisted bool) []types.Sentence {
	texts := p.Tokenizer.Sentences(text)
	sentences := make([]types.Sentence, len(texts))
	for i, t := range texts {
		sentences[i] = types.Sentence{
			Text:   t,
			Tokens: pos.TagFiltered(p.Tagger, p.Tokenizer.SentenceWords(t), whitelisted),
		}
	}
	return sentences
}

// ExtractWithClassifier preprocesses text and labels the result with the
// classifier. With cfg.Named set, tokens labeled outside are dropped.
func (p *Pipeline) ExtractWithClassifier(ctx context.Context, text string, cfg types.Configuration) ([]types.LabeledToken, error) {
	if p.Classifier == nil {
		return nil, fmt.Errorf("%w: no classifier configured", types.ErrExternalToolUnavailable)
	}

	tokens := types.Forms(p.Preprocess(text, cfg))
	labeled, err := p.Classifier.Classify(ctx, tokens)
	if err != nil {
		return nil, err
	}
	p.log.Debug().Int("labeled", len(labeled)).Str("classifier", p.Classifier.Name()).Msg("NER")

	if cfg.Named {
		return ner.NamedOnly(labeled), nil
	}
	return labeled, nil
}
