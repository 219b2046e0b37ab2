package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"agsys/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

// BedrockAPI is the part of the Bedrock runtime client used for embeddings.
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type titanEmbeddingRequest struct {
	InputText string `json:"inputText"`
}

type titanEmbeddingResponse struct {
	Embedding           []float64 `json:"embedding"`
	InputTextTokenCount int       `json:"inputTextTokenCount"`
}

type bedrockEmbeddingGateway struct {
	client  BedrockAPI
	modelID string
}

// NewBedrockEmbeddingGateway invokes modelID (a Titan text embedding model) through client.
func NewBedrockEmbeddingGateway(client BedrockAPI, modelID string) EmbeddingGateway {
	return &bedrockEmbeddingGateway{client: client, modelID: modelID}
}

func (g *bedrockEmbeddingGateway) ModelID() string {
	return g.modelID
}

func (g *bedrockEmbeddingGateway) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := json.Marshal(titanEmbeddingRequest{InputText: text})
	if err != nil {
		return nil, fmt.Errorf("encode embedding request: %w", err)
	}

	output, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, model.NewError(model.ErrUnavailable, err, "Bedrock error: %s", apiErr.ErrorCode())
		}
		return nil, fmt.Errorf("invoke model %s: %w", g.modelID, err)
	}

	var response titanEmbeddingResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(response.Embedding) == 0 {
		return nil, errors.New("model returned an empty embedding")
	}

	return response.Embedding, nil
}
