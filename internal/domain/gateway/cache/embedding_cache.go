package cache

import (
	"context"

	"agsys/internal/domain/model"
)

// EmbeddingCache memoizes generated embeddings by model and text.
type EmbeddingCache interface {
	// Get reports whether an embedding is cached for (modelID, text).
	Get(ctx context.Context, modelID, text string) ([]float64, bool, error)
	Set(ctx context.Context, modelID, text string, embedding []float64) error
}

// HealthGateway reports the state of the cache backend.
type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	Ping(ctx context.Context) error
}
