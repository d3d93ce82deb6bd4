package ner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mortea15/juicer/types"
	"github.com/mortea15/juicer/utils"
)

// Store is the key/value backend of CachedClassifier.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Lock blocks until key is locked and returns the function releasing it.
	Lock(ctx context.Context, key string) (func() error, error)
}

// CachedClassifier memoizes another classifier. Concurrent misses on the
// same key wait on a lock instead of each running the classifier.
type CachedClassifier struct {
	inner Classifier
	store Store
	log   zerolog.Logger
}

func NewCachedClassifier(inner Classifier, store Store, log zerolog.Logger) *CachedClassifier {
	return &CachedClassifier{inner: inner, store: store, log: log}
}

func CacheKey(backend string, tokens []string) string {
	return fmt.Sprintf("juicer:ner:%s:%016x", backend, utils.HashTokens(tokens))
}

func (c *CachedClassifier) Name() string {
	return c.inner.Name()
}

func (c *CachedClassifier) Classify(ctx context.Context, tokens []string) ([]types.LabeledToken, error) {
	key := CacheKey(c.inner.Name(), tokens)
	log := c.log.With().Str("key", key).Logger()

	if res, ok := c.lookup(ctx, key, log); ok {
		return res, nil
	}

	release, err := c.store.Lock(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("Could not lock cache key, classifying uncached")
		return c.inner.Classify(ctx, tokens)
	}
	defer func() {
		if err := release(); err != nil {
			log.Warn().Err(err).Msg("Could not release cache lock")
		}
	}()

	// another process may have filled the key while we waited
	if res, ok := c.lookup(ctx, key, log); ok {
		return res, nil
	}

	res, err := c.inner.Classify(ctx, tokens)
	if err != nil {
		return nil, err
	}

	buf, err := json.Marshal(res)
	if err == nil {
		err = c.store.Set(ctx, key, buf)
	}
	if err != nil {
		log.Warn().Err(err).Msg("Could not store classifier result")
	}
	return res, nil
}

func (c *CachedClassifier) lookup(ctx context.Context, key string, log zerolog.Logger) ([]types.LabeledToken, bool) {
	buf, found, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("Cache lookup failed")
		return nil, false
	}
	if !found {
		return nil, false
	}

	var res []types.LabeledToken
	if err := json.Unmarshal(buf, &res); err != nil {
		log.Warn().Err(err).Msg("Discarding corrupt cache entry")
		return nil, false
	}
	log.Debug().Msg("Classifier cache hit")
	return res, true
}
