package observability

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/version"
)

// ScopeName is the default instrumentation scope of seqkit telemetry.
const ScopeName = "github.com/kbukum/seqkit"

// Instruments bundles the meter instruments and tracer used by pipelines.
// A nil *Instruments is valid and records nothing.
type Instruments struct {
	scope   string
	metrics *metrics
	tracer  trace.Tracer
}

// NewInstruments creates instruments on the given providers under scope.
// An empty scope selects ScopeName.
func NewInstruments(mp metric.MeterProvider, tp trace.TracerProvider, scope string) (*Instruments, error) {
	if scope == "" {
		scope = ScopeName
	}
	ver := version.Short()
	return newInstruments(scope,
		mp.Meter(scope, metric.WithInstrumentationVersion(ver)),
		tp.Tracer(scope, trace.WithInstrumentationVersion(ver)),
	)
}

// DefaultInstruments creates instruments on the global providers installed
// by InitMeter and InitTracer, or on the otel no-op defaults.
func DefaultInstruments(scope string) (*Instruments, error) {
	if scope == "" {
		scope = ScopeName
	}
	ver := version.Short()
	return newInstruments(scope,
		Meter(scope, metric.WithInstrumentationVersion(ver)),
		Tracer(scope, trace.WithInstrumentationVersion(ver)),
	)
}

func newInstruments(scope string, meter metric.Meter, tracer trace.Tracer) (*Instruments, error) {
	m, err := newMetrics(meter)
	if err != nil {
		return nil, err
	}
	return &Instruments{scope: scope, metrics: m, tracer: tracer}, nil
}

// Scope returns the instrumentation scope name.
func (ins *Instruments) Scope() string {
	if ins == nil {
		return ""
	}
	return ins.scope
}
