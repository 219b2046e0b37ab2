package queue

import (
	"context"
	"fmt"
	"time"

	"agsys/internal/domain/model"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/sqs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sqsEventPublisher struct {
	sender *sqs.Sender
	queue  string
	source string
	now    func() time.Time
}

// NewSQSEventPublisher publishes events as JSON messages on queue (a name or URL).
// Source identifies the publishing service.
func NewSQSEventPublisher(client sqs.SQSClient, queue, source string) EventPublisher {
	return &sqsEventPublisher{
		sender: sqs.NewSender(client),
		queue:  queue,
		source: source,
		now:    time.Now,
	}
}

func (p *sqsEventPublisher) Publish(ctx context.Context, event model.EmbeddingEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Source == "" {
		event.Source = p.source
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	messageID, err := p.sender.SendMessage(ctx, p.queue, event, map[string]string{
		"event_type": string(event.Type),
		"source":     event.Source,
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	log.Debug(msg.GetMessage("sqs.sent", p.queue, messageID), zap.String("event_type", string(event.Type)), zap.String("event_id", event.EventID))
	return nil
}
