package health

import (
	"context"

	"agsys/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
	Liveness() model.StatusResponse
	// Readiness runs the registered checks in order and fails with model.ErrUnavailable on the first failure.
	Readiness(ctx context.Context) (model.StatusResponse, error)
	Status() model.ServiceInfo
}
