package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host                  string `envconfig:"JUICER_REDIS_HOST" default:""`
	Port                  string `envconfig:"JUICER_REDIS_PORT" default:"6379"`
	DB                    int    `envconfig:"JUICER_REDIS_DB" default:"0"`
	Password              string `envconfig:"JUICER_REDIS_PASSWORD" default:""`
	LockExpirationSeconds int    `envconfig:"JUICER_REDIS_LOCK_EXPIRATION" default:"30"`
	TTLSeconds            int    `envconfig:"JUICER_REDIS_TTL" default:"0"`
}

// Enabled reports whether a Redis host is configured.
func (cfg Config) Enabled() bool {
	return cfg.Host != ""
}

func ReadEnvironment() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Client is a small key/value view over Redis with distributed locks.
type Client struct {
	client         redis.UniversalClient
	locker         *redislock.Client
	lockExpiration time.Duration
	ttl            time.Duration
}

func NewClient(cfg Config) *Client {
	options := redis.Options{
		Addr:       fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		MaxRetries: 3,
		DB:         cfg.DB,
		Password:   cfg.Password,
	}
	return NewFromUniversal(redis.NewClient(&options), cfg)
}

func NewFromUniversal(client redis.UniversalClient, cfg Config) *Client {
	return &Client{
		client:         client,
		locker:         redislock.New(client),
		lockExpiration: time.Duration(cfg.LockExpirationSeconds) * time.Second,
		ttl:            time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Lock obtains "lock:<key>", retrying linearly for up to the lock expiration.
func (c *Client) Lock(ctx context.Context, key string) (func() error, error) {
	retries := int(c.lockExpiration / time.Second)
	if retries < 1 {
		retries = 1
	}
	strategy := redislock.LimitRetry(redislock.LinearBackoff(time.Second), retries)
	lock, err := c.locker.Obtain(ctx, "lock:"+key, c.lockExpiration, &redislock.Options{RetryStrategy: strategy})
	if err != nil {
		return nil, err
	}
	return releaseFunc(lock), nil
}

type releaser interface {
	Release(ctx context.Context) error
}

// releaseFunc detaches the release from the caller context so a lock taken
// under a cancelled or expired context is still given back.
func releaseFunc(lock releaser) func() error {
	return func() error {
		return lock.Release(context.Background())
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}
