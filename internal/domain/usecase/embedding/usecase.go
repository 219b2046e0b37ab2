package embedding

import (
	"context"

	"agsys/internal/domain/model"
)

type UseCase interface {
	Generate(ctx context.Context, request model.EmbeddingRequest) (*model.EmbeddingResponse, error)
	Store(ctx context.Context, request model.StoreEmbeddingRequest) (*model.StoreEmbeddingResponse, error)
	Retrieve(ctx context.Context, id string) (*model.RetrieveEmbeddingResponse, error)
	Delete(ctx context.Context, id string) (*model.DeleteEmbeddingResponse, error)
}
