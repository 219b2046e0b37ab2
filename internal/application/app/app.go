// Package app builds the pieces every service shares: settings, logging, tracing, the HTTP
// server and the outbound clients.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agsys/configs"
	"agsys/internal/application/controller"
	"agsys/internal/application/schedule"
	"agsys/internal/application/server"
	"agsys/internal/domain/gateway/api"
	"agsys/internal/domain/gateway/cache"
	"agsys/internal/domain/model"
	"agsys/internal/domain/usecase/greeting"
	"agsys/internal/domain/usecase/health"
	"agsys/internal/domain/usecase/interservice"
	awsinfra "agsys/internal/infra/aws"
	cacheinfra "agsys/internal/infra/cache"
	"agsys/pkg/apiclient"
	pkghttp "agsys/pkg/http"
	"agsys/pkg/log"
	"agsys/pkg/msg"
	"agsys/pkg/redis"
	"agsys/pkg/telemetry"
)

// App is one running service.
type App struct {
	Settings *configs.Settings
	Server   *server.Server
	Tracing  *telemetry.Tracing
	// HTTP is the shared outbound client for unauthenticated calls.
	HTTP *pkghttp.Client

	awsOnce   sync.Once
	awsConfig aws.Config
	awsErr    error
}

// New loads settings for the service described by defaults and wires logging, tracing and the server.
func New(ctx context.Context, defaults configs.Defaults) (*App, error) {
	settings, err := configs.Load(defaults)
	if err != nil {
		log.Error(msg.GetMessage("app.config-error", err))
		return nil, err
	}

	log.Configure(log.Config{
		Name:        settings.ServiceName,
		Environment: settings.Environment,
		Level:       settings.LogLevel,
		Format:      settings.LogFormat,
	})
	log.Info(msg.GetMessage("app.start", settings.ServiceName, settings.ServiceVersion, settings.Environment))

	tracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:    settings.ServiceName,
		ServiceVersion: settings.ServiceVersion,
		Environment:    settings.Environment,
		Enabled:        settings.Tracing.Enabled,
		Endpoint:       settings.Tracing.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("set up tracing: %w", err)
	}

	srv := server.New(server.Options{
		ServiceName:     settings.ServiceName,
		Address:         settings.Address(),
		ContextPath:     settings.ContextPath,
		ShutdownTimeout: settings.ShutdownTimeout,
		Tracing:         tracing.Enabled(),
	})
	srv.OnShutdown("tracing", tracing.Shutdown)

	httpClient := pkghttp.NewHttpClient("", pkghttp.ClientOptions{
		FollowRedirect:    true,
		ReadTimeout:       settings.HTTPTimeout,
		ConnectionTimeout: settings.HTTPTimeout,
		Logger:            pkghttp.ZapLogger{},
		Tracing:           tracing.Enabled(),
	})
	srv.OnShutdown("http client", func(context.Context) error {
		httpClient.Close()
		return nil
	})

	return &App{
		Settings: settings,
		Server:   srv,
		Tracing:  tracing,
		HTTP:     httpClient,
	}, nil
}

// HealthOptions returns probe options pre-filled with the service description.
func (a *App) HealthOptions() health.Options {
	return health.Options{
		Info: model.ServiceInfo{
			Name:        a.Settings.ServiceName,
			Version:     a.Settings.ServiceVersion,
			Environment: a.Settings.Environment,
			Description: a.Settings.ServiceDescription,
		},
	}
}

// AWS loads the AWS configuration once.
func (a *App) AWS(ctx context.Context) (aws.Config, error) {
	a.awsOnce.Do(func() {
		a.awsConfig, a.awsErr = awsinfra.LoadConfig(ctx, a.Settings.AWS)
	})
	return a.awsConfig, a.awsErr
}

// Redis connects to Redis when configured. A nil client means Redis is not configured.
func (a *App) Redis(ctx context.Context) (*redis.Client, error) {
	client, err := cacheinfra.NewRedisClient(ctx, a.Settings.Redis)
	if err != nil || client == nil {
		return nil, err
	}
	a.Server.OnShutdown("redis", func(context.Context) error { return client.Close() })
	return client, nil
}

// WithRedisHealth adds the Redis component and readiness check to opts.
func WithRedisHealth(opts *health.Options, client *redis.Client) {
	if client == nil {
		return
	}
	gateway := cache.NewRedisHealthGateway(client)
	if opts.Components == nil {
		opts.Components = make(map[string]health.ComponentCheck)
	}
	opts.Components["redis"] = gateway.Health
	opts.Readiness = append(opts.Readiness, health.Ping("redis", gateway.Ping))
}

// APIClient builds the API key client for calls through the API gateway. It returns nil without
// an error when the project settings needed to name the secret are missing.
func (a *App) APIClient(ctx context.Context) (*apiclient.Client, error) {
	cfg, err := a.AWS(ctx)
	if err != nil {
		return nil, err
	}

	client, err := apiclient.New(awsinfra.NewSecretsManagerClient(cfg), apiclient.Options{
		ServiceName:     a.Settings.ServiceName,
		ProjectName:     a.Settings.ProjectName,
		Environment:     a.Settings.Environment,
		BaseURL:         a.Settings.APIGatewayURL,
		Timeout:         a.Settings.HTTPTimeout,
		DisableKeyCache: !a.Settings.APIKeyCacheEnabled,
		MaxRetries:      a.Settings.HTTPMaxRetries,
		Tracing:         a.Tracing.Enabled(),
	})
	if errors.Is(err, apiclient.ErrMissingProjectName) || errors.Is(err, apiclient.ErrMissingEnvironment) {
		log.Warn(msg.GetMessage("apikey.disabled", err), zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.Server.OnShutdown("api client", func(context.Context) error {
		client.Close()
		return nil
	})

	if a.Settings.APIKeyRefreshCron != "" && a.Settings.APIKeyCacheEnabled {
		scheduler, err := schedule.NewAPIKeyScheduler(client, a.Settings.APIKeyRefreshCron)
		if err != nil {
			return nil, err
		}
		if err := scheduler.InitAPIKeyScheduleTasks(); err != nil {
			return nil, err
		}
		a.Server.OnShutdown("api key scheduler", func(context.Context) error { return scheduler.Shutdown() })
	}

	return client, nil
}

// InterServiceOptions wires the shared client and, when available, the API key client.
func (a *App) InterServiceOptions(client *apiclient.Client) interservice.Options {
	opts := interservice.Options{
		Direct:        api.NewServiceGateway(a.HTTP),
		APIServiceURL: a.Settings.APIServiceURL,
		GatewayURL:    a.Settings.APIGatewayURL,
	}
	if client != nil {
		opts.Authenticated = api.NewAuthenticatedServiceGateway(client)
	}
	return opts
}

// MountCommon registers probes, status and greeting routes on group.
func (a *App) MountCommon(group *echo.Group, healthUseCase health.UseCase, welcome bool, errorDetail string) {
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()

	greetingUseCase := greeting.NewGreetingUseCase(a.Settings.ServiceName, a.Settings.ServiceVersion, errorDetail)
	controller.NewGreetingController(group, greetingUseCase, welcome).InitGreetingRoutes()
}

// Run serves until the process is signalled.
func (a *App) Run(ctx context.Context) error {
	return a.Server.Run(ctx)
}
