package sqs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	mu          sync.Mutex
	urlLookups  int
	sent        []*sqs.SendMessageInput
	deleted     []string
	pending     []types.Message
	receiveErrs int
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, in *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlLookups++
	if aws.ToString(in.QueueName) == "missing" {
		return nil, errors.New("AWS.SimpleQueueService.NonExistentQueue")
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/000000000000/" + aws.ToString(in.QueueName))}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if f.receiveErrs > 0 {
		f.receiveErrs--
		f.mu.Unlock()
		return nil, errors.New("throttled")
	}
	if len(f.pending) > 0 {
		batch := f.pending
		f.pending = nil
		f.mu.Unlock()
		return &sqs.ReceiveMessageOutput{Messages: batch}, nil
	}
	f.mu.Unlock()

	<-ctx.Done()
	return nil, ctx.Err()
}

func (f *fakeSQS) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSenderResolvesAndCachesQueueURL(t *testing.T) {
	client := &fakeSQS{}
	sender := NewSender(client)
	ctx := context.Background()

	id, err := sender.SendMessage(ctx, "events", map[string]string{"type": "stored"}, map[string]string{"event_type": "stored"})
	require.NoError(t, err)
	assert.Equal(t, "m-1", id)

	_, err = sender.SendMessage(ctx, "events", map[string]string{"type": "deleted"}, nil)
	require.NoError(t, err)

	_, err = sender.SendMessage(ctx, "https://sqs.local/000000000000/direct", 1, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, client.urlLookups)
	require.Len(t, client.sent, 3)
	assert.Equal(t, "https://sqs.local/000000000000/events", aws.ToString(client.sent[0].QueueUrl))
	assert.JSONEq(t, `{"type":"stored"}`, aws.ToString(client.sent[0].MessageBody))
	assert.Equal(t, "stored", aws.ToString(client.sent[0].MessageAttributes["event_type"].StringValue))
	assert.Nil(t, client.sent[1].MessageAttributes)
	assert.Equal(t, "https://sqs.local/000000000000/direct", aws.ToString(client.sent[2].QueueUrl))
}

func TestSenderReportsUnknownQueue(t *testing.T) {
	_, err := NewSender(&fakeSQS{}).SendMessage(context.Background(), "missing", "x", nil)
	assert.ErrorContains(t, err, "failed to get queue URL for missing")
}

func TestNewWorkerValidatesConfig(t *testing.T) {
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })
	ctx := context.Background()

	_, err := NewWorker(ctx, &fakeSQS{}, "events", handler, &WorkerConfig{MaxNumberOfMessages: 11})
	assert.Error(t, err)
	_, err = NewWorker(ctx, &fakeSQS{}, "events", handler, &WorkerConfig{WaitTimeSeconds: 21})
	assert.Error(t, err)
	_, err = NewWorker(ctx, &fakeSQS{}, "events", nil, nil)
	assert.Error(t, err)
	_, err = NewWorker(ctx, &fakeSQS{}, "missing", handler, nil)
	assert.Error(t, err)
}

func TestWorkerDeletesOnlyHandledMessages(t *testing.T) {
	client := &fakeSQS{
		receiveErrs: 1,
		pending: []types.Message{
			{MessageId: aws.String("1"), ReceiptHandle: aws.String("r-1"), Body: aws.String("ok")},
			{MessageId: aws.String("2"), ReceiptHandle: aws.String("r-2"), Body: aws.String("bad")},
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	var handled atomic.Int32
	handler := HandlerFunc(func(_ context.Context, m types.Message) error {
		if handled.Add(1) == 2 {
			defer cancel()
		}
		if aws.ToString(m.Body) == "bad" {
			return errors.New("invalid payload")
		}
		return nil
	})

	worker, err := NewWorker(ctx, client, "events", handler, &WorkerConfig{ErrorBackoff: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, StatusDown, worker.HealthCheck().Status)

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}

	assert.Equal(t, []string{"r-1"}, client.deleted)
	health := worker.HealthCheck()
	assert.Equal(t, "1", health.Details["processed"])
	assert.Equal(t, "1", health.Details["failed"])
	assert.Equal(t, "false", health.Details["running"])
}
