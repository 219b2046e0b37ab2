package entity

import (
	"fmt"
	"time"
)

// EmbeddingDocument is the JSON object stored for each embedding.
type EmbeddingDocument struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Embedding []float64      `json:"embedding"`
	Dimension int            `json:"dimension"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at"`
}

// NewEmbeddingDocument fills Dimension and CreatedAt. Nil metadata becomes an empty object.
func NewEmbeddingDocument(id, text string, embedding []float64, metadata map[string]any, now time.Time) EmbeddingDocument {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return EmbeddingDocument{
		ID:        id,
		Text:      text,
		Embedding: embedding,
		Dimension: len(embedding),
		Metadata:  metadata,
		CreatedAt: now.UTC().Format(time.RFC3339Nano),
	}
}

// EmbeddingKey is the object key of an embedding document.
func EmbeddingKey(id string) string {
	return fmt.Sprintf("embeddings/%s.json", id)
}
