package health

import (
	"context"
	"time"

	"agsys/internal/domain/model"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/util/numberutils"
)

// Options configures the probes of one service.
type Options struct {
	Info              model.ServiceInfo
	StartedAt         time.Time
	BedrockConfigured *bool
	S3Configured      *bool
	Readiness         []ReadinessCheck
	Components        map[string]ComponentCheck
	Now               func() time.Time
}

type healthUseCase struct {
	opts Options
}

func NewHealthUseCase(opts Options) UseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.StartedAt.IsZero() {
		opts.StartedAt = opts.Now()
	}
	return &healthUseCase{opts: opts}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	now := useCase.opts.Now()

	response := model.HealthResponse{
		Status:            "healthy",
		Timestamp:         now.UTC().Format(time.RFC3339),
		UptimeSeconds:     numberutils.Seconds(now.Sub(useCase.opts.StartedAt)),
		Name:              useCase.opts.Info.Name,
		Version:           useCase.opts.Info.Version,
		BedrockConfigured: useCase.opts.BedrockConfigured,
		S3Configured:      useCase.opts.S3Configured,
	}

	if len(useCase.opts.Components) > 0 {
		response.Components = make(map[string]model.ComponentHealthStatus, len(useCase.opts.Components))
		for name, check := range useCase.opts.Components {
			response.Components[name] = check(ctx)
		}
	}

	return response
}

func (useCase *healthUseCase) Liveness() model.StatusResponse {
	return model.StatusResponse{Status: "alive"}
}

func (useCase *healthUseCase) Readiness(ctx context.Context) (model.StatusResponse, error) {
	for _, check := range useCase.opts.Readiness {
		if err := check.Check(ctx); err != nil {
			log.Warn(msg.GetMessage("health.readiness-failed", check.Name, err))
			return model.StatusResponse{}, model.NewError(model.ErrUnavailable, err, "%s", err.Error())
		}
	}
	return model.StatusResponse{Status: "ready"}, nil
}

func (useCase *healthUseCase) Status() model.ServiceInfo {
	return useCase.opts.Info
}
