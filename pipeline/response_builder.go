package pipeline

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/mortea15/juicer/normalize"
	"github.com/mortea15/juicer/types"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// Run executes one action and builds its response document.
func (p *Pipeline) Run(ctx context.Context, action string, text string, cfg types.Configuration) (types.Response, error) {
	resp := types.Response{Id: newID(), Action: action}

	switch action {
	case types.ActionRemoveStops:
		resp.Items = p.RemoveStopwords(text)
	case types.ActionSpeechTag:
		resp.Tagged = p.SpeechTag(text, cfg.Whitelisted)
		resp.Items = types.Texts(resp.Tagged)
	case types.ActionLemmatize:
		fillNormalized(&resp, p.Lemmatize(text, cfg))
	case types.ActionProcess:
		fillNormalized(&resp, p.Preprocess(text, cfg))
	case types.ActionExtract:
		resp.Entities = p.Extract(text, cfg)
		resp.Items = types.SpanTexts(resp.Entities)
	case types.ActionStanford, types.ActionProcessWithNER:
		labeled, err := p.ExtractWithClassifier(ctx, text, cfg)
		if err != nil {
			return resp, err
		}
		resp.Labels = labeled
		resp.Items = types.LabeledTexts(labeled)
	default:
		return resp, fmt.Errorf("%w: unknown action %q", types.ErrArgument, action)
	}

	if resp.Items == nil {
		resp.Items = []string{}
	}
	resp.Text = strings.Join(resp.Items, " ")
	return resp, nil
}

func fillNormalized(resp *types.Response, normalized []types.NormalizedToken) {
	resp.Normalized = normalized
	resp.Items = types.Forms(normalized)
	resp.Unresolved = normalize.Unresolved(normalized)
}
