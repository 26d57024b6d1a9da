package pipeline

import (
	"fmt"

	"github.com/kbukum/seqkit/chunk"
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

// Option configures a root pipeline. Derived pipelines inherit the settings.
type Option func(*settings)

// WithName labels the pipeline in logs and telemetry.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithID sets the pipeline identifier. It must be a UUID; an invalid id
// makes the first pull fail with INVALID_ARGUMENT.
func WithID(id string) Option {
	return func(s *settings) { s.id = id }
}

// WithLogger sets the logger. The default is the "pipeline" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithInstruments records metrics and spans through ins.
func WithInstruments(ins *observability.Instruments) Option {
	return func(s *settings) { s.ins = ins }
}

// WithChunkStrategy selects how Chunk, ChunkPadded and ChunkExact drain
// their source.
func WithChunkStrategy(strategy chunk.Strategy) Option {
	return func(s *settings) { s.strategy = strategy }
}

// Configure turns a loaded configuration into pipeline options.
//
// With telemetry enabled, a Reader or Exporter in cfg.Telemetry is first
// installed as the global meter or tracer backend; the instruments are then
// taken from the global providers.
func Configure(cfg *config.Config) ([]Option, error) {
	strategy, err := chunk.ParseStrategy(cfg.Pipeline.ChunkStrategy)
	if err != nil {
		return nil, err
	}
	tel := cfg.Telemetry
	hasSink := tel.Reader != nil || tel.Exporter != nil
	if err := validation.New().
		Custom(tel.Enabled || !hasSink, "telemetry.enabled", "must be true when a reader or exporter is set").
		Err(); err != nil {
		return nil, err
	}

	name := cfg.Pipeline.Name
	if name == "" {
		name = cfg.Name
	}
	opts := []Option{
		WithName(name),
		WithChunkStrategy(strategy),
		WithLogger(logger.New(&cfg.Logging, cfg.Name).WithComponent(component)),
	}
	if !tel.Enabled {
		return opts, nil
	}

	if err := installProviders(cfg); err != nil {
		return nil, err
	}
	ins, err := observability.DefaultInstruments(tel.Scope)
	if err != nil {
		return nil, fmt.Errorf("creating instruments: %w", err)
	}
	return append(opts, WithInstruments(ins)), nil
}

func installProviders(cfg *config.Config) error {
	pc := observability.DefaultProviderConfig(cfg.Name)
	pc.ServiceVersion = version.Short()
	if cfg.Environment != "" {
		pc.Environment = cfg.Environment
	}
	if cfg.Telemetry.Reader != nil {
		if _, err := observability.InitMeter(pc, cfg.Telemetry.Reader); err != nil {
			return fmt.Errorf("installing meter provider: %w", err)
		}
	}
	if cfg.Telemetry.Exporter != nil {
		if _, err := observability.InitTracer(pc, cfg.Telemetry.Exporter); err != nil {
			return fmt.Errorf("installing tracer provider: %w", err)
		}
	}
	return nil
}
