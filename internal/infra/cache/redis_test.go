package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"agsys/configs"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), configs.RedisSettings{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(context.Background(), configs.RedisSettings{
		Host:              server.Host(),
		Port:              port,
		EmbeddingCacheTTL: 10 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 10*time.Minute, client.GetConfig().CacheTTLs["embeddings"])
}

func TestNewRedisClientUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	server.Close()

	_, err = NewRedisClient(context.Background(), configs.RedisSettings{Host: "127.0.0.1", Port: port})
	assert.Error(t, err)
}
