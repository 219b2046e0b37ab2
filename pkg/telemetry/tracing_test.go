package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabledByConfig(t *testing.T) {
	tracing, err := Setup(context.Background(), Config{ServiceName: "api", Enabled: false})
	require.NoError(t, err)

	assert.False(t, tracing.Enabled())
	assert.Equal(t, "disabled_by_config", tracing.DisabledReason())
	assert.NoError(t, tracing.Shutdown(context.Background()))
	assert.NotNil(t, tracing.Tracer("test"))
}

func TestSetupDisabledInLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "agsys-dev-api")

	tracing, err := Setup(context.Background(), Config{ServiceName: "api", Enabled: true, Endpoint: "http://localhost:4317"})
	require.NoError(t, err)
	assert.Equal(t, "lambda_environment", tracing.DisabledReason())
}

func TestSetupRequiresEndpoint(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

	_, err := Setup(context.Background(), Config{ServiceName: "api", Enabled: true})
	assert.Error(t, err)
}

func TestSetupExportsWhenEnabled(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")

	tracing, err := Setup(context.Background(), Config{
		ServiceName: "api", ServiceVersion: "0.1.0", Environment: "test",
		Enabled: true, Endpoint: "http://127.0.0.1:4317",
	})
	require.NoError(t, err)
	assert.True(t, tracing.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = tracing.Shutdown(ctx)
}
