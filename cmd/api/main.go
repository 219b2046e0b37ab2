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

// @title API Service
// @version 0.2.0
// @description Entry service behind the API gateway
// @BasePath /
func main() {
	ctx := context.Background()
	defer log.Sync()

	application, err := app.New(ctx, configs.Defaults{
		Name:        "api",
		Version:     "0.2.0",
		Description: "API service",
		Port:        8000,
	})
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	api := application.Server.API()

	// Init clients
	apiClient, err := application.APIClient(ctx)
	if err != nil {
		log.Fatal("failed to create service API client", zap.Error(err))
	}

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(application.HealthOptions())
	interServiceUseCase := interservice.NewInterServiceUseCase(application.InterServiceOptions(apiClient))

	// Init Routes
	application.MountCommon(api, healthUseCase, false, "")
	interServiceController := controller.NewInterServiceController(api, interServiceUseCase)
	interServiceController.InitInterServiceRoutes()
	interServiceController.InitServiceHealthRoutes()

	if err := application.Run(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
