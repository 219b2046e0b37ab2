package main

import (
	"context"

	"agsys/configs"
	"agsys/internal/application/app"
	"agsys/internal/domain/usecase/health"
	"agsys/pkg/log"

	"go.uber.org/zap"
)

// @title S3 Vector Service
// @version 1.0.0
// @description Bedrock embeddings stored as JSON documents in S3
// @BasePath /
func main() {
	ctx := context.Background()
	defer log.Sync()

	application, err := app.New(ctx, configs.Defaults{
		Name:        "s3vector",
		Version:     "1.0.0",
		Description: "S3 vector service",
		Port:        8080,
	})
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	group := application.Server.API()

	// Init UseCase
	embeddingUseCase, healthOpts, err := application.Embeddings(ctx)
	if err != nil {
		log.Fatal("failed to wire embeddings", zap.Error(err))
	}
	healthUseCase := health.NewHealthUseCase(healthOpts)

	// Init Routes
	application.MountCommon(group, healthUseCase, true, "")
	app.MountEmbeddings(group, embeddingUseCase)

	if err := application.Run(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
