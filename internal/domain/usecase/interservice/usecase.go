package interservice

import (
	"context"

	"agsys/internal/domain/model"
)

type UseCase interface {
	// CallService performs GET url, through the API key client when authenticated is set.
	CallService(ctx context.Context, url string, authenticated bool) (*model.InterServiceResponse, error)
	// APIHealth calls the API service health endpoint.
	APIHealth(ctx context.Context) (*model.ApiHealthResponse, error)
	// ServiceHealth calls {gateway}/{service}/health with the service API key.
	ServiceHealth(ctx context.Context, service string) (*model.InterServiceResponse, error)
}
