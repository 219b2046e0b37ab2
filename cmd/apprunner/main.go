package main

import (
	"context"
	"time"

	"agsys/configs"
	"agsys/internal/application/app"
	"agsys/internal/application/controller"
	"agsys/internal/domain/gateway/api"
	"agsys/internal/domain/usecase/health"
	"agsys/internal/domain/usecase/interservice"
	pkghttp "agsys/pkg/http"
	"agsys/pkg/log"

	"go.uber.org/zap"
)

const apiHealthTimeout = 5 * time.Second

// @title AppRunner Service
// @version 0.1.0
// @description Container service that calls the API service
// @BasePath /
func main() {
	ctx := context.Background()
	defer log.Sync()

	application, err := app.New(ctx, configs.Defaults{
		Name:        "apprunner",
		Version:     "0.1.0",
		Description: "AppRunner service",
		Port:        8080,
	})
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	settings := application.Settings
	group := application.Server.API()

	// Init clients
	apiServiceClient := pkghttp.NewHttpClient("", pkghttp.ClientOptions{
		ReadTimeout: settings.HTTPTimeout,
		Backoff:     pkghttp.NewBackoffConfig(settings.HTTPMaxRetries),
		Logger:      pkghttp.ZapLogger{},
		Tracing:     application.Tracing.Enabled(),
	})
	application.Server.OnShutdown("api service client", func(context.Context) error {
		apiServiceClient.Close()
		return nil
	})
	apiServiceGateway := api.NewServiceGateway(apiServiceClient)

	apiClient, err := application.APIClient(ctx)
	if err != nil {
		log.Fatal("failed to create service API client", zap.Error(err))
	}

	// Init UseCase
	healthOpts := application.HealthOptions()
	healthOpts.Readiness = append(healthOpts.Readiness,
		health.UpstreamHealth("API", api.NewServiceGateway(application.HTTP), settings.APIServiceURL, apiHealthTimeout))
	redisClient, err := application.Redis(ctx)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	app.WithRedisHealth(&healthOpts, redisClient)
	healthUseCase := health.NewHealthUseCase(healthOpts)

	interServiceOpts := application.InterServiceOptions(apiClient)
	interServiceOpts.APIService = apiServiceGateway
	interServiceUseCase := interservice.NewInterServiceUseCase(interServiceOpts)

	// Init Routes
	application.MountCommon(group, healthUseCase, false, "This is a test error from AppRunner service")
	interServiceController := controller.NewInterServiceController(group, interServiceUseCase)
	interServiceController.InitAPIHealthRoutes()
	interServiceController.InitInterServiceRoutes()

	if err := application.Run(ctx); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
