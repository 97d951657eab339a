package ratelimit_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/config"
	"notekeep/internal/ratelimit"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*miniredis.Miniredis, *ratelimit.RedisLimiter) {
	t.Helper()

	server := miniredis.RunT(t)

	host, portStr, found := strings.Cut(server.Addr(), ":")
	require.True(t, found)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	limiter, err := ratelimit.NewRedisLimiter(context.Background(), &config.RedisConfig{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		PoolSize:       2,
	}, limit, window)
	require.NoError(t, err, "should connect to test redis without errors")

	t.Cleanup(func() {
		require.NoError(t, limiter.Close())
	})

	return server, limiter
}

func TestNewRedisLimiter(t *testing.T) {
	t.Run("connection failure", func(t *testing.T) {
		_, err := ratelimit.NewRedisLimiter(context.Background(), &config.RedisConfig{
			Host:           "localhost",
			Port:           1,
			ConnectTimeout: 100 * time.Millisecond,
		}, 10, time.Minute)
		require.Error(t, err)
	})
}

func TestAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("requests under the limit pass", func(t *testing.T) {
		_, limiter := newTestLimiter(t, 3, time.Minute)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.Allow(ctx, "client-1")
			require.NoError(t, err)
			assert.True(t, allowed, "request %d should pass", i+1)
		}
	})

	t.Run("requests over the limit are rejected", func(t *testing.T) {
		_, limiter := newTestLimiter(t, 3, time.Minute)

		for i := 0; i < 3; i++ {
			_, err := limiter.Allow(ctx, "client-1")
			require.NoError(t, err)
		}

		allowed, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.False(t, allowed, "request over the limit should be rejected")
	})

	t.Run("counters are tracked per key", func(t *testing.T) {
		_, limiter := newTestLimiter(t, 1, time.Minute)

		allowed, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.False(t, allowed)

		allowed, err = limiter.Allow(ctx, "client-2")
		require.NoError(t, err)
		assert.True(t, allowed, "another client keeps its own counter")
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		server, limiter := newTestLimiter(t, 1, time.Minute)

		allowed, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.False(t, allowed)

		server.FastForward(time.Minute + time.Second)

		allowed, err = limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.True(t, allowed, "new window should start after expiry")
	})

	t.Run("window counter always carries a TTL", func(t *testing.T) {
		server, limiter := newTestLimiter(t, 10, time.Minute)

		for i := 0; i < 3; i++ {
			_, err := limiter.Allow(ctx, "client-1")
			require.NoError(t, err)
		}

		assert.Greater(t, server.TTL("ratelimit:client-1"), time.Duration(0))
	})

	t.Run("orphaned counter without TTL gets one attached", func(t *testing.T) {
		server, limiter := newTestLimiter(t, 3, time.Minute)

		// Ключ, оставшийся от прерванного процесса: счетчик есть, TTL нет.
		require.NoError(t, server.Set("ratelimit:client-1", "5"))
		require.Equal(t, time.Duration(0), server.TTL("ratelimit:client-1"))

		allowed, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Greater(t, server.TTL("ratelimit:client-1"), time.Duration(0))

		server.FastForward(time.Minute + time.Second)

		allowed, err = limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.True(t, allowed, "counter should reset once the attached TTL expires")
	})

	t.Run("counter key carries the limiter prefix", func(t *testing.T) {
		server, limiter := newTestLimiter(t, 10, time.Minute)

		_, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)

		assert.True(t, server.Exists("ratelimit:client-1"))
	})
}
