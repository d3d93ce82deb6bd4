package ner

import (
	"context"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/mortea15/juicer/types"
)

// ProseClassifier labels tokens with the entity model bundled in prose.
type ProseClassifier struct{}

func NewProseClassifier() *ProseClassifier {
	return &ProseClassifier{}
}

func (p *ProseClassifier) Name() string {
	return types.ClassifierProse
}

// Classify re-tokenizes the joined tokens with prose and aligns the result
// back onto the input. Input tokens prose does not reproduce are labeled
// outside.
func (p *ProseClassifier) Classify(ctx context.Context, tokens []string) ([]types.LabeledToken, error) {
	res := make([]types.LabeledToken, len(tokens))
	for i, tok := range tokens {
		res[i] = types.LabeledToken{Text: tok, Label: types.OutsideLabel}
	}
	if len(tokens) == 0 {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "), prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	next := 0
	for _, tok := range doc.Tokens() {
		for j := next; j < len(tokens); j++ {
			if tokens[j] == tok.Text {
				res[j].Label = stripIOB(tok.Label)
				next = j + 1
				break
			}
		}
	}
	return res, nil
}

func stripIOB(label string) string {
	if label == "" {
		return types.OutsideLabel
	}
	if strings.HasPrefix(label, "B-") || strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}
