package config

import (
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/validation"
)

// Config holds the settings an application hands to pipeline.Configure.
//
// Applications embed it in their own config structs:
//
//	type AppConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Batch int     `yaml:"batch" mapstructure:"batch"`
//	}
type Config struct {
	Name        string          `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string          `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging"`
	Pipeline    PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Telemetry   TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// PipelineConfig holds defaults for root pipelines.
type PipelineConfig struct {
	// Name labels pipelines in logs and telemetry. Empty falls back to
	// Config.Name.
	Name string `yaml:"name" mapstructure:"name"`
	// ChunkStrategy is one of auto, pull or slice.
	ChunkStrategy string `yaml:"chunk_strategy" mapstructure:"chunk_strategy" validate:"omitempty,oneof=auto pull slice"`
}

// TelemetryConfig switches metrics and spans on.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Scope is the instrumentation scope name; empty uses the module path.
	Scope string `yaml:"scope" mapstructure:"scope"`

	// Reader and Exporter are set in code, never loaded. When either is
	// present, pipeline.Configure installs it as the global provider
	// backend. The caller keeps ownership and shuts them down.
	Reader   sdkmetric.Reader      `yaml:"-" mapstructure:"-" validate:"-"`
	Exporter sdktrace.SpanExporter `yaml:"-" mapstructure:"-" validate:"-"`
}

// GetConfig returns the embedded Config. Embedding structs inherit it.
func (c *Config) GetConfig() *Config {
	return c
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Pipeline.ChunkStrategy == "" {
		c.Pipeline.ChunkStrategy = "auto"
	}
	if c.Environment == "development" && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the struct tags, including those of the nested logging
// section.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
