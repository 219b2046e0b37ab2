package app

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agsys/configs"
	"agsys/internal/domain/usecase/health"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("SERVICE_VERSION", "")
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("ENABLE_TRACING", "false")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("API_KEY_REFRESH_CRON", "")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	application, err := New(context.Background(), configs.Defaults{
		Name:        "api",
		Version:     "0.2.0",
		Description: "api service",
		Port:        8000,
	})
	require.NoError(t, err)
	return application
}

func TestNewAppliesDefaults(t *testing.T) {
	application := newTestApp(t)

	assert.Equal(t, "api", application.Settings.ServiceName)
	assert.Equal(t, ":8000", application.Settings.Address())
	assert.False(t, application.Tracing.Enabled())

	info := application.HealthOptions().Info
	assert.Equal(t, "api", info.Name)
	assert.Equal(t, "0.2.0", info.Version)
	assert.Equal(t, "dev", info.Environment)
	assert.Equal(t, "api service", info.Description)
}

func TestAPIClientDisabledWithoutProject(t *testing.T) {
	t.Setenv("PROJECT_NAME", "")
	application := newTestApp(t)

	client, err := application.APIClient(context.Background())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestAPIClientNamesServiceSecret(t *testing.T) {
	t.Setenv("PROJECT_NAME", "agsys")
	application := newTestApp(t)

	client, err := application.APIClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "agsys/dev/api/api-key", client.SecretName())
}

func TestRedisDisabled(t *testing.T) {
	application := newTestApp(t)

	client, err := application.Redis(context.Background())
	require.NoError(t, err)
	assert.Nil(t, client)

	opts := application.HealthOptions()
	WithRedisHealth(&opts, client)
	assert.Empty(t, opts.Components)
	assert.Empty(t, opts.Readiness)
}

func TestWithRedisHealth(t *testing.T) {
	server := miniredis.RunT(t)
	application := newTestApp(t)
	application.Settings.Redis.Host = server.Host()
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	application.Settings.Redis.Port = port

	client, err := application.Redis(context.Background())
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	opts := application.HealthOptions()
	WithRedisHealth(&opts, client)
	require.Contains(t, opts.Components, "redis")
	require.Len(t, opts.Readiness, 1)
	assert.Equal(t, "redis", opts.Readiness[0].Name)
	assert.NoError(t, opts.Readiness[0].Check(context.Background()))
}

func TestMountCommonRegistersRoutes(t *testing.T) {
	application := newTestApp(t)

	application.MountCommon(application.Server.API(), health.NewHealthUseCase(application.HealthOptions()), false, "")

	routes := map[string]bool{}
	for _, route := range application.Server.Echo().Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{"/health", "/liveness", "/readiness", "/status", "/greet", "/error"} {
		assert.True(t, routes[http.MethodGet+" "+want], "missing GET %s", want)
	}
	assert.True(t, routes[http.MethodPost+" /greet"])
}

func TestInterServiceOptions(t *testing.T) {
	application := newTestApp(t)

	opts := application.InterServiceOptions(nil)
	assert.NotNil(t, opts.Direct)
	assert.Nil(t, opts.Authenticated)
	assert.Equal(t, application.Settings.APIServiceURL, opts.APIServiceURL)
}
