package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friendsofmine/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{
		URL: "redis://" + server.Addr() + "/0",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "ping", "pong", 0).Err())
	value, err := server.Get("ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", value)
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{URL: "http://not-redis"})

	assert.ErrorContains(t, err, "failed to parse redis url")
}

func TestNewRedisClientUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + addr})

	assert.ErrorContains(t, err, "failed to ping redis")
}
