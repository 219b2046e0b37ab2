package events

import (
	"context"

	"agsys/internal/domain/model"
)

type UseCase interface {
	// Record accounts for a consumed event. Malformed events fail with model.ErrValidation.
	Record(ctx context.Context, event model.EmbeddingEvent) error
	// RecordFailure accounts for a message that could not be processed.
	RecordFailure()
	Stats() model.EventStats
}
