package ai

import "context"

// EmbeddingGateway turns text into a vector using a hosted embedding model.
type EmbeddingGateway interface {
	// Embed returns the embedding of text. Model API failures are reported as model.ErrUnavailable.
	Embed(ctx context.Context, text string) ([]float64, error)
	// ModelID names the model used by Embed.
	ModelID() string
}
