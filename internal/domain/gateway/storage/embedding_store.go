package storage

import (
	"context"

	"agsys/internal/domain/entity"
)

// EmbeddingStore persists embedding documents. Missing documents are reported as model.ErrNotFound.
type EmbeddingStore interface {
	Put(ctx context.Context, document entity.EmbeddingDocument) (string, error)
	Get(ctx context.Context, id string) (*entity.EmbeddingDocument, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	Bucket() string
}
