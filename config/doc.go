// Package config loads the settings that pipeline.Configure turns into
// pipeline options.
//
// It uses Viper to read a YAML, JSON or TOML file, then a .env file, then
// environment variables, in increasing order of precedence. Struct tags
// are checked with the validation package after defaults are applied.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load("ingest", &cfg); err != nil {
//	    return err
//	}
//	opts, err := pipeline.Configure(&cfg)
//
// Environment variables use the SEQKIT_ prefix with underscore-separated
// paths (e.g., SEQKIT_PIPELINE_CHUNK_STRATEGY=pull).
package config
