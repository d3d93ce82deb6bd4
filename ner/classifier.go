// Package ner classifies token sequences into named-entity labels.
package ner

import (
	"context"

	"github.com/mortea15/juicer/types"
)

// Classifier labels every token. Implementations return one pair per input
// token, in input order.
type Classifier interface {
	Classify(ctx context.Context, tokens []string) ([]types.LabeledToken, error)
	Name() string
}

// NamedOnly drops the pairs labeled as outside any entity. Labels are
// compared by value.
func NamedOnly(labeled []types.LabeledToken) []types.LabeledToken {
	res := make([]types.LabeledToken, 0, len(labeled))
	for _, l := range labeled {
		if !l.IsOutside() {
			res = append(res, l)
		}
	}
	return res
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(ctx context.Context, tokens []string) ([]types.LabeledToken, error)

func (f ClassifierFunc) Classify(ctx context.Context, tokens []string) ([]types.LabeledToken, error) {
	return f(ctx, tokens)
}

func (f ClassifierFunc) Name() string {
	return "func"
}
