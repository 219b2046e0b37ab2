package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"agsys/internal/domain/entity"
	"agsys/internal/domain/gateway/ai"
	"agsys/internal/domain/gateway/cache"
	"agsys/internal/domain/gateway/queue"
	"agsys/internal/domain/gateway/storage"
	"agsys/internal/domain/model"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/util/numberutils"

	"go.uber.org/zap"
)

// Options wires the embedding backends. Store, Cache and Events are optional.
type Options struct {
	Embeddings ai.EmbeddingGateway
	Store      storage.EmbeddingStore
	Cache      cache.EmbeddingCache
	Events     queue.EventPublisher
	Now        func() time.Time
}

type embeddingUseCase struct {
	opts Options
}

func NewEmbeddingUseCase(opts Options) UseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &embeddingUseCase{opts: opts}
}

var errBucketNotConfigured = model.NewError(model.ErrUnavailable, nil, "S3 bucket not configured")

func (useCase *embeddingUseCase) Generate(ctx context.Context, request model.EmbeddingRequest) (*model.EmbeddingResponse, error) {
	if request.Text == "" {
		return nil, model.NewError(model.ErrValidation, nil, "text must not be empty")
	}
	if request.StoreInS3 {
		if strings.TrimSpace(request.EmbeddingID) == "" {
			return nil, model.NewError(model.ErrBadRequest, nil, "embedding_id required when store_in_s3=true")
		}
		if useCase.opts.Store == nil {
			return nil, errBucketNotConfigured
		}
	}

	modelID := useCase.opts.Embeddings.ModelID()
	textLength := utf8.RuneCountInString(request.Text)
	log.Info(msg.GetMessage("embedding.generate", modelID, textLength), zap.Bool("store_in_s3", request.StoreInS3))

	start := useCase.opts.Now()
	vector, cached := useCase.cached(ctx, modelID, request.Text)
	if !cached {
		var err error
		vector, err = useCase.opts.Embeddings.Embed(ctx, request.Text)
		if err != nil {
			if errors.Is(err, model.ErrUnavailable) {
				log.Error(msg.GetMessage("embedding.bedrock-error", err))
				return nil, err
			}
			return nil, fmt.Errorf("Failed to generate embedding: %w", err)
		}
		useCase.remember(ctx, modelID, request.Text, vector)
	}
	elapsed := numberutils.Milliseconds(useCase.opts.Now().Sub(start))
	log.Info(msg.GetMessage("embedding.generated", len(vector), elapsed), zap.Bool("cached", cached))

	response := &model.EmbeddingResponse{
		Embedding:        vector,
		Dimension:        len(vector),
		Model:            modelID,
		TextLength:       textLength,
		ProcessingTimeMs: elapsed,
		StoredInS3:       request.StoreInS3,
		Cached:           cached,
	}

	if request.StoreInS3 {
		key, err := useCase.put(ctx, entity.NewEmbeddingDocument(request.EmbeddingID, request.Text, vector, nil, useCase.opts.Now()))
		if err != nil {
			return nil, fmt.Errorf("Failed to generate embedding: %w", err)
		}
		response.S3Key = &key
	}

	return response, nil
}

func (useCase *embeddingUseCase) Store(ctx context.Context, request model.StoreEmbeddingRequest) (*model.StoreEmbeddingResponse, error) {
	if useCase.opts.Store == nil {
		return nil, errBucketNotConfigured
	}
	if request.EmbeddingID == "" || request.Text == "" || len(request.Embedding) == 0 {
		return nil, model.NewError(model.ErrValidation, nil, "embedding_id, text and embedding are required")
	}

	document := entity.NewEmbeddingDocument(request.EmbeddingID, request.Text, request.Embedding, request.Metadata, useCase.opts.Now())
	key, err := useCase.put(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("Failed to store embedding: %w", err)
	}

	return &model.StoreEmbeddingResponse{
		Success: true,
		S3Key:   key,
		Bucket:  useCase.opts.Store.Bucket(),
	}, nil
}

func (useCase *embeddingUseCase) Retrieve(ctx context.Context, id string) (*model.RetrieveEmbeddingResponse, error) {
	if useCase.opts.Store == nil {
		return nil, errBucketNotConfigured
	}

	document, err := useCase.opts.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		log.Error(msg.GetMessage("embedding.s3-error", id, err))
		return nil, fmt.Errorf("Failed to retrieve embedding: %w", err)
	}
	log.Info(msg.GetMessage("embedding.retrieved", id))

	return &model.RetrieveEmbeddingResponse{
		EmbeddingID: document.ID,
		Text:        document.Text,
		Embedding:   document.Embedding,
		Dimension:   document.Dimension,
		Metadata:    metadataOrEmpty(document.Metadata),
	}, nil
}

func (useCase *embeddingUseCase) Delete(ctx context.Context, id string) (*model.DeleteEmbeddingResponse, error) {
	if useCase.opts.Store == nil {
		return nil, errBucketNotConfigured
	}

	exists, err := useCase.opts.Store.Exists(ctx, id)
	if err != nil {
		log.Error(msg.GetMessage("embedding.s3-error", id, err))
		return nil, fmt.Errorf("Failed to delete embedding: %w", err)
	}
	if !exists {
		return nil, model.NewError(model.ErrNotFound, nil, "Embedding not found: %s", id)
	}

	if err := useCase.opts.Store.Delete(ctx, id); err != nil {
		log.Error(msg.GetMessage("embedding.s3-error", id, err))
		return nil, fmt.Errorf("Failed to delete embedding: %w", err)
	}
	log.Info(msg.GetMessage("embedding.deleted", id))

	useCase.publish(ctx, model.EmbeddingEvent{
		Type:        model.EmbeddingDeleted,
		EmbeddingID: id,
		S3Key:       entity.EmbeddingKey(id),
	})

	return &model.DeleteEmbeddingResponse{
		Success:     true,
		EmbeddingID: id,
		Message:     fmt.Sprintf("Embedding %s successfully deleted", id),
	}, nil
}

func (useCase *embeddingUseCase) put(ctx context.Context, document entity.EmbeddingDocument) (string, error) {
	key, err := useCase.opts.Store.Put(ctx, document)
	if err != nil {
		log.Error(msg.GetMessage("embedding.s3-error", document.ID, err))
		return "", err
	}
	log.Info(msg.GetMessage("embedding.stored", document.ID, useCase.opts.Store.Bucket(), key))

	useCase.publish(ctx, model.EmbeddingEvent{
		Type:        model.EmbeddingStored,
		EmbeddingID: document.ID,
		S3Key:       key,
		Dimension:   document.Dimension,
	})
	return key, nil
}

// publish never fails the request; a lost event only delays downstream consumers.
func (useCase *embeddingUseCase) publish(ctx context.Context, event model.EmbeddingEvent) {
	if useCase.opts.Events == nil {
		return
	}
	if err := useCase.opts.Events.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("embedding.event-error", event.Type, event.EmbeddingID, err))
	}
}

func (useCase *embeddingUseCase) cached(ctx context.Context, modelID, text string) ([]float64, bool) {
	if useCase.opts.Cache == nil {
		return nil, false
	}
	vector, found, err := useCase.opts.Cache.Get(ctx, modelID, text)
	if err != nil {
		log.Warn(msg.GetMessage("embedding.cache-error", err))
		return nil, false
	}
	if found {
		log.Debug(msg.GetMessage("embedding.cache-hit", modelID))
	}
	return vector, found
}

func (useCase *embeddingUseCase) remember(ctx context.Context, modelID, text string, vector []float64) {
	if useCase.opts.Cache == nil {
		return
	}
	if err := useCase.opts.Cache.Set(ctx, modelID, text, vector); err != nil {
		log.Warn(msg.GetMessage("embedding.cache-error", err))
	}
}

func metadataOrEmpty(metadata map[string]any) map[string]any {
	if metadata == nil {
		return map[string]any{}
	}
	return metadata
}
