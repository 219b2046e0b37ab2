package app

import (
	"context"

	"github.com/labstack/echo/v4"

	"agsys/internal/application/controller"
	"agsys/internal/domain/gateway/ai"
	"agsys/internal/domain/gateway/cache"
	"agsys/internal/domain/gateway/queue"
	"agsys/internal/domain/gateway/storage"
	"agsys/internal/domain/usecase/embedding"
	"agsys/internal/domain/usecase/health"
	"agsys/internal/domain/usecase/interservice"
	awsinfra "agsys/internal/infra/aws"
)

// Embeddings wires Bedrock, the vector bucket, the optional Redis cache and the optional
// event queue. The returned health options carry the matching flags and readiness checks.
func (a *App) Embeddings(ctx context.Context) (embedding.UseCase, health.Options, error) {
	healthOpts := a.HealthOptions()

	cfg, err := a.AWS(ctx)
	if err != nil {
		return nil, healthOpts, err
	}

	settings := a.Settings.AWS
	opts := embedding.Options{
		Embeddings: ai.NewBedrockEmbeddingGateway(awsinfra.NewBedrockRuntimeClient(cfg), settings.BedrockModelID),
	}

	bedrockConfigured := settings.BedrockModelID != ""
	s3Configured := settings.VectorBucketName != ""
	healthOpts.BedrockConfigured = &bedrockConfigured
	healthOpts.S3Configured = &s3Configured
	healthOpts.Readiness = append(healthOpts.Readiness, health.BucketConfigured(settings.VectorBucketName))

	if s3Configured {
		opts.Store = storage.NewS3EmbeddingStore(awsinfra.NewS3Client(cfg), settings.VectorBucketName)
	}

	if settings.EmbeddingEventsQueue != "" {
		opts.Events = queue.NewSQSEventPublisher(awsinfra.NewSQSClient(cfg), settings.EmbeddingEventsQueue, a.Settings.ServiceName)
	}

	redisClient, err := a.Redis(ctx)
	if err != nil {
		return nil, healthOpts, err
	}
	if redisClient != nil {
		opts.Cache = cache.NewRedisEmbeddingCache(redisClient, a.Settings.Redis.EmbeddingCacheTTL)
		WithRedisHealth(&healthOpts, redisClient)
	}

	return embedding.NewEmbeddingUseCase(opts), healthOpts, nil
}

// MountEmbeddings registers the embedding routes on group.
func MountEmbeddings(group *echo.Group, useCase embedding.UseCase) {
	controller.NewEmbeddingController(group, useCase).InitEmbeddingRoutes()
}

// MountVector registers the vector service routes. Probes, status and the welcome route answer both
// at the root and under /{service name}, which the API gateway routes to; embeddings and the
// inter-service call stay at the root.
func (a *App) MountVector(healthUseCase health.UseCase, embeddingUseCase embedding.UseCase, interServiceUseCase interservice.UseCase) {
	root := a.Server.API()
	a.MountCommon(root, healthUseCase, true, "")
	a.MountCommon(a.Server.Group("/"+a.Settings.ServiceName), healthUseCase, true, "")

	MountEmbeddings(root, embeddingUseCase)
	controller.NewInterServiceController(root, interServiceUseCase).InitInterServiceRoutes()
}
