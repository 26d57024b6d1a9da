package observability

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/logger"
)

// ProviderConfig describes the process that owns the telemetry providers.
type ProviderConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// SampleRate is the trace sampling rate (0.0 to 1.0).
	SampleRate float64
}

// DefaultProviderConfig returns sensible defaults for development.
func DefaultProviderConfig(serviceName string) ProviderConfig {
	return ProviderConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		SampleRate:     1.0,
	}
}

// NewTracerProvider builds an SDK tracer provider exporting through exporter.
// Spans are exported synchronously when they end.
func NewTracerProvider(cfg ProviderConfig, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	if exporter == nil {
		return nil, fmt.Errorf("creating tracer provider: nil exporter")
	}
	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var sampler sdktrace.Sampler
	switch {
	case cfg.SampleRate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	case cfg.SampleRate <= 0:
		sampler = sdktrace.NeverSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(cfg.SampleRate)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	), nil
}

// InitTracer builds a tracer provider and installs it as the global provider.
func InitTracer(cfg ProviderConfig, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	tp, err := NewTracerProvider(cfg, exporter)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)

	logger.Info("tracer initialized", logger.Fields(
		"service", cfg.ServiceName,
		"sample_rate", cfg.SampleRate,
	))
	return tp, nil
}

// newResource creates an OpenTelemetry resource with service metadata.
// The attributes are schemaless so they merge with any SDK default schema.
func newResource(serviceName, serviceVersion, environment string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			attribute.String("environment", environment),
		),
	)
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return otel.Tracer(name, opts...)
}

// Span names.
const (
	SpanTerminal = "seqkit.terminal"
)

// Attribute keys shared by spans and metrics.
const (
	AttrPipelineName = "seqkit.pipeline.name"
	AttrPipelineID   = "seqkit.pipeline.id"
	AttrOperation    = "seqkit.operation"
	AttrItems        = "seqkit.items"
	AttrErrorCode    = "error.code"
	AttrStatus       = "status"
	AttrDurationMs   = "duration_ms"
)
