// Package validation provides argument and configuration checks.
//
// Programmatic checks guard the size and count arguments of chunking and
// slicing operations; every failure is an INVALID_ARGUMENT AppError.
//
//	if err := validation.Positive("n", n); err != nil {
//	    return nil, err
//	}
//
// Struct tag validation (go-playground/validator) checks loaded
// configuration:
//
//	type PipelineConfig struct {
//	    ChunkStrategy string `validate:"omitempty,oneof=auto pull slice"`
//	}
//	err := validation.Validate(cfg)
package validation
