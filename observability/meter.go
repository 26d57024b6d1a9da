package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/logger"
)

// Instrument names.
const (
	MetricItemsPulled      = "seqkit.items.pulled"
	MetricTerminalErrors   = "seqkit.terminal.errors"
	MetricTerminalDuration = "seqkit.terminal.duration"
)

// NewMeterProvider builds an SDK meter provider that feeds reader.
// The caller owns the provider and must shut it down.
func NewMeterProvider(cfg ProviderConfig, reader sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	if reader == nil {
		return nil, fmt.Errorf("creating meter provider: nil reader")
	}
	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	), nil
}

// InitMeter builds a meter provider and installs it as the global provider.
func InitMeter(cfg ProviderConfig, reader sdkmetric.Reader) (*sdkmetric.MeterProvider, error) {
	mp, err := NewMeterProvider(cfg, reader)
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string, opts ...metric.MeterOption) metric.Meter {
	return otel.Meter(name, opts...)
}

// metrics holds the instruments recorded by pipelines.
type metrics struct {
	itemsPulled      metric.Int64Counter
	terminalErrors   metric.Int64Counter
	terminalDuration metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	itemsPulled, err := meter.Int64Counter(MetricItemsPulled,
		metric.WithDescription("Values pulled from pipeline sources"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricItemsPulled, err)
	}

	terminalErrors, err := meter.Int64Counter(MetricTerminalErrors,
		metric.WithDescription("Terminal operations that returned an error, by code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricTerminalErrors, err)
	}

	terminalDuration, err := meter.Float64Histogram(MetricTerminalDuration,
		metric.WithDescription("Duration of terminal operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricTerminalDuration, err)
	}

	return &metrics{
		itemsPulled:      itemsPulled,
		terminalErrors:   terminalErrors,
		terminalDuration: terminalDuration,
	}, nil
}

func (m *metrics) recordPulled(ctx context.Context, pipeline string, n int64) {
	m.itemsPulled.Add(ctx, n, metric.WithAttributes(
		attribute.String(AttrPipelineName, pipeline),
	))
}

func (m *metrics) recordTerminal(ctx context.Context, pipeline, operation, code string, d time.Duration) {
	m.terminalDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String(AttrPipelineName, pipeline),
		attribute.String(AttrOperation, operation),
	))
	if code == "" {
		return
	}
	m.terminalErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPipelineName, pipeline),
		attribute.String(AttrOperation, operation),
		attribute.String(AttrErrorCode, code),
	))
}
