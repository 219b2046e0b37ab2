package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/events"
	"agsys/pkg/log"
	"agsys/pkg/msg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type EmbeddingEventProcessor struct {
	eventsUseCase events.UseCase
}

func NewEmbeddingEventProcessor(eventsUseCase events.UseCase) *EmbeddingEventProcessor {
	return &EmbeddingEventProcessor{
		eventsUseCase: eventsUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. Malformed events are acknowledged so they
// are not redelivered forever; everything else is returned for a retry.
func (p *EmbeddingEventProcessor) HandleMessage(ctx context.Context, message types.Message) error {
	if message.Body == nil {
		p.eventsUseCase.RecordFailure()
		log.Warn(msg.GetMessage("events.invalid", "empty body"))
		return nil
	}

	var event model.EmbeddingEvent
	if err := json.Unmarshal([]byte(*message.Body), &event); err != nil {
		p.eventsUseCase.RecordFailure()
		log.Warn(msg.GetMessage("events.invalid", err))
		return nil
	}

	if err := p.eventsUseCase.Record(ctx, event); err != nil {
		if errors.Is(err, model.ErrValidation) {
			log.Warn(msg.GetMessage("events.invalid", err))
			return nil
		}
		return fmt.Errorf("failed to record event from message %s: %w", aws.ToString(message.MessageId), err)
	}

	return nil
}
