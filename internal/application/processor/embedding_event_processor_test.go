package processor

import (
	"context"
	"testing"

	"agsys/internal/domain/usecase/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
)

func TestHandleMessage(t *testing.T) {
	useCase := events.NewEventsUseCase("embedding-events")
	processor := NewEmbeddingEventProcessor(useCase)
	ctx := context.Background()

	body := `{"event_id":"e-1","type":"embedding.stored","source":"vector","embedding_id":"doc-1","s3_key":"embeddings/doc-1.json","dimension":3,"occurred_at":"2025-01-01T00:00:00Z"}`
	assert.NoError(t, processor.HandleMessage(ctx, types.Message{MessageId: aws.String("m-1"), Body: aws.String(body)}))

	assert.NoError(t, processor.HandleMessage(ctx, types.Message{MessageId: aws.String("m-2"), Body: aws.String("{not json")}))
	assert.NoError(t, processor.HandleMessage(ctx, types.Message{MessageId: aws.String("m-3"), Body: aws.String(`{"type":"other"}`)}))
	assert.NoError(t, processor.HandleMessage(ctx, types.Message{MessageId: aws.String("m-4")}))

	stats := useCase.Stats()
	assert.Equal(t, int64(1), stats.Processed)
	assert.Equal(t, int64(3), stats.Failed)
	assert.Equal(t, "doc-1", stats.LastEvent.EmbeddingID)
	assert.Equal(t, 3, stats.LastEvent.Dimension)
}
