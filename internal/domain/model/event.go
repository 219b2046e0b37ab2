package model

import "time"

type EmbeddingEventType string

const (
	EmbeddingStored  EmbeddingEventType = "embedding.stored"
	EmbeddingDeleted EmbeddingEventType = "embedding.deleted"
)

// EmbeddingEvent is published to the embedding events queue when a vector document changes.
type EmbeddingEvent struct {
	EventID     string             `json:"event_id"`
	Type        EmbeddingEventType `json:"type"`
	Source      string             `json:"source"`
	EmbeddingID string             `json:"embedding_id"`
	S3Key       string             `json:"s3_key"`
	Dimension   int                `json:"dimension,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// EventStats summarizes what the runner consumed from the embedding events queue.
type EventStats struct {
	Queue      string           `json:"queue"`
	Processed  int64            `json:"processed"`
	Failed     int64            `json:"failed"`
	ByType     map[string]int64 `json:"by_type"`
	LastEvent  *EmbeddingEvent  `json:"last_event,omitempty"`
	LastSeenAt *time.Time       `json:"last_seen_at,omitempty"`
}
