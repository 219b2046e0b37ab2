package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"agsys/pkg/log"
	"agsys/pkg/msg"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(ctx context.Context, msg types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg types.Message) error {
	return f(ctx, msg)
}

// Handler defines an interface that processes a SQS Message.
// Messages are deleted only when HandleMessage returns nil.
type Handler interface {
	HandleMessage(ctx context.Context, msg types.Message) error
}

// HealthStatus of a worker
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealth is a point-in-time view of a worker.
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ErrorBackoff is the pause after a failed receive.
	ErrorBackoff time.Duration
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           SQSClient
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	errorBackoff        time.Duration
	handler             Handler

	running   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64

	mu        sync.RWMutex
	lastPoll  time.Time
	lastError string
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or its fields are zero,
// the following defaults will be used:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//   - ErrorBackoff: 1s
//
// Validations:
//   - MaxNumberOfMessages must be between 1 and 10.
//   - WaitTimeSeconds must be between 1 and 20.
//   - PoolSize must be greater than 0.
func NewWorker(ctx context.Context, sqsClient SQSClient, queue string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1
	errorBackoff := time.Second

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		if config.ErrorBackoff != 0 {
			errorBackoff = config.ErrorBackoff
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	resolver := &queueResolver{client: sqsClient}
	queueURL, err := resolver.resolve(ctx, queue)
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queue,
		queueURL:            queueURL,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		errorBackoff:        errorBackoff,
		handler:             handler,
	}, nil
}

// Start begins polling messages and processing them.
// It will spawn PoolSize number of pollers that keep polling messages
// until the provided context is canceled, and returns once they all stopped.
func (w *Worker) Start(ctx context.Context) {
	var wg sync.WaitGroup
	w.running.Store(true)
	defer w.running.Store(false)

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}

	wg.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              aws.String(w.queueURL),
			MaxNumberOfMessages:   w.maxNumberOfMessages,
			WaitTimeSeconds:       w.waitTimeSeconds,
			MessageAttributeNames: []string{"All"},
		})
		w.recordPoll(err)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error(msg.GetMessage("sqs.receive-error", w.queueName, err), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorBackoff):
			}
			continue
		}

		for _, message := range output.Messages {
			w.handleMessage(ctx, message)
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, message types.Message) {
	messageID := aws.ToString(message.MessageId)

	if err := w.handler.HandleMessage(ctx, message); err != nil {
		w.failed.Add(1)
		log.Error(msg.GetMessage("sqs.process-error", messageID, err), zap.String("message_id", messageID), zap.Error(err))
		return
	}
	w.processed.Add(1)

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.queueURL),
		ReceiptHandle: message.ReceiptHandle,
	})
	if err != nil {
		log.Error(msg.GetMessage("sqs.delete-error", messageID, err), zap.String("message_id", messageID), zap.Error(err))
	}
}

func (w *Worker) recordPoll(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastPoll = time.Now()
	if err != nil {
		w.lastError = err.Error()
	} else {
		w.lastError = ""
	}
}

// QueueURL is the resolved URL of the polled queue.
func (w *Worker) QueueURL() string {
	return w.queueURL
}

// HealthCheck reports DOWN when the worker is stopped or its last receive failed.
func (w *Worker) HealthCheck() WorkerHealth {
	w.mu.RLock()
	lastPoll, lastError := w.lastPoll, w.lastError
	w.mu.RUnlock()

	status := StatusUp
	if !w.running.Load() || lastError != "" {
		status = StatusDown
	}

	details := map[string]string{
		"queue":     w.queueName,
		"running":   strconv.FormatBool(w.running.Load()),
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if !lastPoll.IsZero() {
		details["last_poll"] = lastPoll.UTC().Format(time.RFC3339)
	}
	if lastError != "" {
		details["last_error"] = lastError
	}

	return WorkerHealth{Status: status, Details: details}
}
