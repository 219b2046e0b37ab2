package cache

import (
	"context"
	"fmt"

	"agsys/configs"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/redis"
)

// NewRedisClient connects to the Redis server described by settings and checks it answers.
// It returns nil when no Redis host is configured.
func NewRedisClient(ctx context.Context, settings configs.RedisSettings) (*redis.Client, error) {
	if !settings.Enabled() {
		return nil, nil
	}

	cfg := redis.NewRedisConfig().
		WithHost(settings.Host).
		WithPort(settings.Port).
		WithPassword(settings.Password).
		WithDatabase(settings.DB)
	if settings.EmbeddingCacheTTL > 0 {
		cfg = cfg.WithCacheTTL("embeddings", settings.EmbeddingCacheTTL)
	}

	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}

	if err := redis.NewHealthChecker(client).Ping(ctx); err != nil {
		log.Error(msg.GetMessage("redis.error", settings.Addr(), err))
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", settings.Addr(), err)
	}

	log.Info(msg.GetMessage("redis.connected", settings.Addr()))
	return client, nil
}
