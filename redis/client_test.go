package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvironment(t *testing.T) {
	os.Unsetenv("JUICER_REDIS_HOST")
	cfg, err := ReadEnvironment()
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
	assert.Equal(t, "6379", cfg.Port)
	assert.Equal(t, 30, cfg.LockExpirationSeconds)

	os.Setenv("JUICER_REDIS_HOST", "cache.local")
	defer os.Unsetenv("JUICER_REDIS_HOST")
	cfg, err = ReadEnvironment()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled())
}

func TestNewClientDoesNotConnect(t *testing.T) {
	c := NewClient(Config{Host: "127.0.0.1", Port: "1", LockExpirationSeconds: 1})
	require.NotNil(t, c)
	assert.NoError(t, c.Close())
}

type recordingLock struct {
	released []context.Context
}

func (l *recordingLock) Release(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.released = append(l.released, ctx)
	return nil
}

func TestReleaseOutlivesCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lock := &recordingLock{}
	release := releaseFunc(lock)
	cancel()

	require.Error(t, ctx.Err())
	require.NoError(t, release())
	require.Len(t, lock.released, 1)
	assert.NoError(t, lock.released[0].Err())
}
