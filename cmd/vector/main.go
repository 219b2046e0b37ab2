package main

import (
	"context"

	"agsys/configs"
	"agsys/internal/application/app"
	"agsys/internal/domain/usecase/health"
	"agsys/internal/domain/usecase/interservice"
	"agsys/pkg/log"

	"go.uber.org/zap"
)

// @title Vector Service
// @version 1.0.0
// @description Bedrock embeddings with S3 storage; probes also served under /vector
// @BasePath /
func main() {
	ctx := context.Background()
	defer log.Sync()

	application, err := app.New(ctx, configs.Defaults{
		Name:        "vector",
		Version:     "1.0.0",
		Description: "Vector service",
		Port:        8080,
	})
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}

	// Init clients
	apiClient, err := application.APIClient(ctx)
	if err != nil {
		log.Fatal("failed to create service API client", zap.Error(err))
	}

	// Init UseCase
	embeddingUseCase, healthOpts, err := application.Embeddings(ctx)
	if err != nil {
		log.Fatal("failed to wire embeddings", zap.Error(err))
	}
	healthUseCase := health.NewHealthUseCase(healthOpts)
	interServiceUseCase := interservice.NewInterServiceUseCase(application.InterServiceOptions(apiClient))

	// Init Routes
	application.MountVector(healthUseCase, embeddingUseCase, interServiceUseCase)

	if err := application.Run(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
