package queue

import (
	"context"

	"agsys/internal/domain/model"
)

// EventPublisher announces changes to stored embeddings.
type EventPublisher interface {
	Publish(ctx context.Context, event model.EmbeddingEvent) error
}
