package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agsys/internal/domain/model"
	"agsys/pkg/sqs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	sent    []*awssqs.SendMessageInput
	sendErr error
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, in *awssqs.GetQueueUrlInput, _ ...func(*awssqs.Options)) (*awssqs.GetQueueUrlOutput, error) {
	return &awssqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/000000000000/" + aws.ToString(in.QueueName))}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, in *awssqs.SendMessageInput, _ ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, in)
	return &awssqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func (f *fakeSQS) ReceiveMessage(context.Context, *awssqs.ReceiveMessageInput, ...func(*awssqs.Options)) (*awssqs.ReceiveMessageOutput, error) {
	return &awssqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSQS) DeleteMessage(context.Context, *awssqs.DeleteMessageInput, ...func(*awssqs.Options)) (*awssqs.DeleteMessageOutput, error) {
	return &awssqs.DeleteMessageOutput{}, nil
}

func TestPublishFillsEnvelope(t *testing.T) {
	client := &fakeSQS{}
	publisher := NewSQSEventPublisher(client, "embedding-events", "vector")

	err := publisher.Publish(context.Background(), model.EmbeddingEvent{
		Type:        model.EmbeddingStored,
		EmbeddingID: "doc-1",
		S3Key:       "embeddings/doc-1.json",
		Dimension:   3,
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	input := client.sent[0]
	assert.Equal(t, "https://sqs.local/000000000000/embedding-events", aws.ToString(input.QueueUrl))
	assert.Equal(t, "embedding.stored", aws.ToString(input.MessageAttributes["event_type"].StringValue))
	assert.Equal(t, "vector", aws.ToString(input.MessageAttributes["source"].StringValue))

	var event model.EmbeddingEvent
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(input.MessageBody)), &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "vector", event.Source)
	assert.Equal(t, "doc-1", event.EmbeddingID)
	assert.WithinDuration(t, time.Now(), event.OccurredAt, time.Minute)
}

func TestPublishReturnsSendError(t *testing.T) {
	publisher := NewSQSEventPublisher(&fakeSQS{sendErr: errors.New("access denied")}, "embedding-events", "vector")

	err := publisher.Publish(context.Background(), model.EmbeddingEvent{Type: model.EmbeddingDeleted, EmbeddingID: "doc-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

type stubWorker struct {
	health sqs.WorkerHealth
}

func (s stubWorker) HealthCheck() sqs.WorkerHealth {
	return s.health
}

func TestQueueHealthGateway(t *testing.T) {
	gateway := NewQueueHealthGateway()
	assert.Equal(t, model.StatusUnknown, gateway.Health().Status)

	gateway.RegisterWorker("events", stubWorker{health: sqs.WorkerHealth{Status: sqs.StatusUp, Details: map[string]string{"processed": "4"}}})
	health := gateway.Health()
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "UP", health.Details["events_status"])
	assert.Equal(t, "4", health.Details["events_processed"])
	assert.Equal(t, "1", health.Details["workers_up"])

	gateway.RegisterWorker("audit", stubWorker{health: sqs.WorkerHealth{Status: sqs.StatusDown}})
	health = gateway.Health()
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Equal(t, "1", health.Details["workers_down"])

	gateway.UnregisterWorker("audit")
	assert.Equal(t, model.StatusUp, gateway.Health().Status)
}
