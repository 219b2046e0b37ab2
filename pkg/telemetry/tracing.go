package telemetry

import (
	"context"
	"errors"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"agsys/pkg/log"
	"agsys/pkg/msg"
)

// Config selects the exporter and the resource attributes of the tracer provider.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	// Endpoint is the OTLP gRPC collector URL, e.g. http://localhost:4317.
	Endpoint string
}

// Tracing owns the process tracer provider.
type Tracing struct {
	provider *sdktrace.TracerProvider
	reason   string
}

// Enabled reports whether spans are exported.
func (t *Tracing) Enabled() bool {
	return t.provider != nil
}

// DisabledReason explains why tracing is off. Empty when enabled.
func (t *Tracing) DisabledReason() string {
	return t.reason
}

// Tracer returns a named tracer from the global provider.
func (t *Tracing) Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// Shutdown flushes pending spans. It is a no-op when tracing is disabled.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return t.provider.Shutdown(ctx)
}

// Setup installs the global tracer provider and W3C propagators. Tracing stays off when
// it is disabled by configuration or the process runs inside AWS Lambda, whose runtime
// layer owns instrumentation.
func Setup(ctx context.Context, cfg Config) (*Tracing, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	switch {
	case !cfg.Enabled:
		log.Info(msg.GetMessage("telemetry.disabled"), zap.String("reason", "disabled_by_config"))
		return &Tracing{reason: "disabled_by_config"}, nil
	case os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "":
		log.Info(msg.GetMessage("telemetry.disabled"), zap.String("reason", "lambda_environment"))
		return &Tracing{reason: "lambda_environment"}, nil
	case cfg.Endpoint == "":
		return nil, errors.New("tracing enabled without an OTLP endpoint")
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpointURL(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		log.Error(msg.GetMessage("telemetry.error", err), zap.Error(err))
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName+"-"+cfg.Environment),
		attribute.String("service.version", cfg.ServiceVersion),
		attribute.String("deployment.environment", cfg.Environment),
	))
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	log.Info(msg.GetMessage("telemetry.enabled", cfg.Endpoint), zap.String("endpoint", cfg.Endpoint))
	return &Tracing{provider: provider}, nil
}
