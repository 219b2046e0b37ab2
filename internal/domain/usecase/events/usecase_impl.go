package events

import (
	"context"
	"sync"
	"time"

	"agsys/internal/domain/model"
	"agsys/pkg/log"
	"agsys/pkg/msg"
)

type eventsUseCase struct {
	queue string
	now   func() time.Time

	mu         sync.RWMutex
	processed  int64
	failed     int64
	byType     map[string]int64
	lastEvent  *model.EmbeddingEvent
	lastSeenAt *time.Time
}

// NewEventsUseCase keeps in-memory statistics for the events consumed from queue.
func NewEventsUseCase(queue string) UseCase {
	return &eventsUseCase{
		queue:  queue,
		now:    time.Now,
		byType: make(map[string]int64),
	}
}

func (useCase *eventsUseCase) Record(_ context.Context, event model.EmbeddingEvent) error {
	switch event.Type {
	case model.EmbeddingStored, model.EmbeddingDeleted:
	default:
		useCase.RecordFailure()
		return model.NewError(model.ErrValidation, nil, "unknown event type %q", event.Type)
	}
	if event.EmbeddingID == "" {
		useCase.RecordFailure()
		return model.NewError(model.ErrValidation, nil, "event %s has no embedding_id", event.EventID)
	}

	seen := useCase.now().UTC()

	useCase.mu.Lock()
	useCase.processed++
	useCase.byType[string(event.Type)]++
	useCase.lastEvent = &event
	useCase.lastSeenAt = &seen
	useCase.mu.Unlock()

	log.Info(msg.GetMessage("events.processed", event.Type, event.EmbeddingID))
	return nil
}

func (useCase *eventsUseCase) RecordFailure() {
	useCase.mu.Lock()
	defer useCase.mu.Unlock()
	useCase.failed++
}

func (useCase *eventsUseCase) Stats() model.EventStats {
	useCase.mu.RLock()
	defer useCase.mu.RUnlock()

	byType := make(map[string]int64, len(useCase.byType))
	for k, v := range useCase.byType {
		byType[k] = v
	}

	stats := model.EventStats{
		Queue:     useCase.queue,
		Processed: useCase.processed,
		Failed:    useCase.failed,
		ByType:    byType,
	}
	if useCase.lastEvent != nil {
		event := *useCase.lastEvent
		seen := *useCase.lastSeenAt
		stats.LastEvent = &event
		stats.LastSeenAt = &seen
	}
	return stats
}
