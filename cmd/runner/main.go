package main

import (
	"context"

	"agsys/configs"
	"agsys/internal/application/app"
	"agsys/internal/application/controller"
	"agsys/internal/domain/usecase/health"
	"agsys/internal/domain/usecase/interservice"
	"agsys/pkg/log"

	"go.uber.org/zap"
)

// @title Runner Service
// @version 1.0.0
// @description Worker service consuming embedding events
// @BasePath /
func main() {
	ctx := context.Background()
	defer log.Sync()

	application, err := app.New(ctx, configs.Defaults{
		Name:        "runner",
		Version:     "1.0.0",
		Description: "Runner service",
		Port:        8080,
	})
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	group := application.Server.API()

	// Init clients
	apiClient, err := application.APIClient(ctx)
	if err != nil {
		log.Fatal("failed to create service API client", zap.Error(err))
	}
	redisClient, err := application.Redis(ctx)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	// Init Workers
	healthOpts := application.HealthOptions()
	app.WithRedisHealth(&healthOpts, redisClient)
	if err := application.EmbeddingEvents(ctx, &healthOpts); err != nil {
		log.Fatal("failed to start embedding events worker", zap.Error(err))
	}

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthOpts)
	interServiceUseCase := interservice.NewInterServiceUseCase(application.InterServiceOptions(apiClient))

	// Init Routes
	application.MountCommon(group, healthUseCase, true, "")
	controller.NewInterServiceController(group, interServiceUseCase).InitInterServiceRoutes()

	if err := application.Run(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
