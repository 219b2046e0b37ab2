package model

type EmbeddingRequest struct {
	Text        string `json:"text" validate:"required,min=1" example:"hello world"`
	StoreInS3   bool   `json:"store_in_s3"`
	EmbeddingID string `json:"embedding_id,omitempty" example:"doc-1"`
}

type EmbeddingResponse struct {
	Embedding        []float64 `json:"embedding"`
	Dimension        int       `json:"dimension" example:"1024"`
	Model            string    `json:"model" example:"amazon.titan-embed-text-v2:0"`
	TextLength       int       `json:"text_length" example:"11"`
	ProcessingTimeMs float64   `json:"processing_time_ms" example:"85.2"`
	StoredInS3       bool      `json:"stored_in_s3"`
	S3Key            *string   `json:"s3_key"`
	Cached           bool      `json:"cached,omitempty"`
}

type StoreEmbeddingRequest struct {
	EmbeddingID string         `json:"embedding_id" validate:"required" example:"doc-1"`
	Text        string         `json:"text" validate:"required" example:"hello world"`
	Embedding   []float64      `json:"embedding" validate:"required,min=1"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type StoreEmbeddingResponse struct {
	Success bool   `json:"success"`
	S3Key   string `json:"s3_key" example:"embeddings/doc-1.json"`
	Bucket  string `json:"bucket" example:"agsys-dev-vectors"`
}

type RetrieveEmbeddingResponse struct {
	EmbeddingID string         `json:"embedding_id" example:"doc-1"`
	Text        string         `json:"text" example:"hello world"`
	Embedding   []float64      `json:"embedding"`
	Dimension   int            `json:"dimension" example:"1024"`
	Metadata    map[string]any `json:"metadata"`
}

type DeleteEmbeddingResponse struct {
	Success     bool   `json:"success"`
	EmbeddingID string `json:"embedding_id" example:"doc-1"`
	Message     string `json:"message" example:"Embedding doc-1 successfully deleted"`
}
