package main

import (
	"github.com/rs/zerolog"

	"github.com/mortea15/juicer/logger"
	"github.com/mortea15/juicer/ner"
	"github.com/mortea15/juicer/redis"
	"github.com/mortea15/juicer/resources"
	"github.com/mortea15/juicer/rmq"
	"github.com/mortea15/juicer/s3client"
	"github.com/mortea15/juicer/types"
)

type publisher interface {
	Publish(id string, body []byte) error
	Close() error
}

// dependencies build the parts of a run that reach outside the process.
type dependencies struct {
	newClassifier func(env Environment, cfg types.Configuration, log zerolog.Logger) (ner.Classifier, func(), error)
	newPublisher  func(log zerolog.Logger) (publisher, error)
	newFetcher    func(log zerolog.Logger) (resources.Fetcher, error)
}

func defaultDependencies() dependencies {
	return dependencies{
		newClassifier: newClassifier,
		newPublisher:  newPublisher,
		newFetcher:    newFetcher,
	}
}

// newClassifier picks the backend and puts the Redis cache in front of it
// when a host is configured.
func newClassifier(env Environment, cfg types.Configuration, log zerolog.Logger) (ner.Classifier, func(), error) {
	var classifier ner.Classifier
	switch cfg.Classifier {
	case types.ClassifierProse:
		classifier = ner.NewProseClassifier()
	default:
		classifier = ner.NewStanfordClassifier(ner.StanfordConfig{
			BasePath: env.StanfordPath,
			Java:     env.Java,
			Heap:     env.JavaHeap,
		}, logger.Component(log, "StanfordNER"))
	}

	redisCfg, err := redis.ReadEnvironment()
	if err != nil {
		return nil, nil, err
	}
	if !redisCfg.Enabled() {
		return classifier, func() {}, nil
	}

	client := redis.NewClient(redisCfg)
	cached := ner.NewCachedClassifier(classifier, client, logger.Component(log, "NERCache"))
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
	return cached, cleanup, nil
}

func newPublisher(log zerolog.Logger) (publisher, error) {
	cfg, err := rmq.ReadEnvironment()
	if err != nil {
		return nil, err
	}
	return rmq.NewPublisher(cfg, logger.Component(log, "Publisher"))
}

// newFetcher downloads from S3 when a bucket is configured and falls back to
// the resources built into the binary.
func newFetcher(log zerolog.Logger) (resources.Fetcher, error) {
	env, err := s3client.ReadEnvironment()
	if err != nil {
		return nil, err
	}
	if !env.Enabled() {
		return resources.BundledFetcher{}, nil
	}
	return s3client.New(env, logger.Component(log, "S3"))
}
