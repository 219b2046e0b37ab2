package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	client, err := NewClient(NewRedisConfig().WithHost(server.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Error(t, NewRedisConfig().WithCacheTTL("x", -time.Second).Validate())

	_, err := NewClient(NewRedisConfig().WithPort(70000))
	assert.Error(t, err)
}

func TestCacheRoundTrip(t *testing.T) {
	client, server := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("embeddings").WithTTL(time.Minute))
	ctx := context.Background()

	var miss []float64
	assert.ErrorIs(t, cache.Get(ctx, "k", &miss), ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "k", []float64{0.5, -1}))
	assert.True(t, server.Exists("embeddings::k"))
	assert.Equal(t, time.Minute, server.TTL("embeddings::k"))

	var got []float64
	require.NoError(t, cache.Get(ctx, "k", &got))
	assert.Equal(t, []float64{0.5, -1}, got)

	exists, err := cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Delete(ctx, "k"))
	assert.False(t, server.Exists("embeddings::k"))
}

func TestCacheTTLPrefersConfiguredCacheName(t *testing.T) {
	client, _ := newTestClient(t)
	client.GetConfig().WithCacheTTL("embeddings", 5*time.Minute)

	assert.Equal(t, 5*time.Minute, NewCache(client, NewCacheOptions().WithCacheName("embeddings")).TTL())
	assert.Equal(t, time.Hour, NewCache(client, nil).TTL())
}

func TestHealthCheck(t *testing.T) {
	client, server := newTestClient(t)
	checker := NewHealthChecker(client)

	result := checker.HealthCheck(context.Background())
	assert.Equal(t, StatusUp, result.Status)
	assert.Equal(t, server.Host(), result.Details["host"])

	server.Close()
	result = checker.HealthCheck(context.Background())
	assert.Equal(t, StatusDown, result.Status)
	assert.NotEmpty(t, result.Details["error"])
}
