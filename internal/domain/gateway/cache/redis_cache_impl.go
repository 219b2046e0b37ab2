package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"agsys/internal/domain/model"
	"agsys/pkg/redis"
)

const embeddingCacheName = "embeddings"

type redisEmbeddingCache struct {
	cache *redis.Cache
}

// NewRedisEmbeddingCache stores embeddings as JSON arrays for ttl (the client default when zero).
func NewRedisEmbeddingCache(client *redis.Client, ttl time.Duration) EmbeddingCache {
	opts := redis.NewCacheOptions().WithCacheName(embeddingCacheName)
	if ttl > 0 {
		opts = opts.WithTTL(ttl)
	}
	return &redisEmbeddingCache{cache: redis.NewCache(client, opts)}
}

// EmbeddingCacheKey is the model id joined with the hex SHA-256 of the text.
func EmbeddingCacheKey(modelID, text string) string {
	sum := sha256.Sum256([]byte(text))
	return modelID + ":" + hex.EncodeToString(sum[:])
}

func (c *redisEmbeddingCache) Get(ctx context.Context, modelID, text string) ([]float64, bool, error) {
	var embedding []float64
	err := c.cache.Get(ctx, EmbeddingCacheKey(modelID, text), &embedding)
	if errors.Is(err, redis.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return embedding, true, nil
}

func (c *redisEmbeddingCache) Set(ctx context.Context, modelID, text string, embedding []float64) error {
	return c.cache.Set(ctx, EmbeddingCacheKey(modelID, text), embedding)
}

type redisHealthGateway struct {
	checker *redis.HealthChecker
}

// NewRedisHealthGateway reports Redis connectivity and pool statistics.
func NewRedisHealthGateway(client *redis.Client) HealthGateway {
	return &redisHealthGateway{checker: redis.NewHealthChecker(client)}
}

func (g *redisHealthGateway) Ping(ctx context.Context) error {
	return g.checker.Ping(ctx)
}

func (g *redisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := g.checker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}
