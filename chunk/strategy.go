package chunk

import (
	"strings"

	"github.com/kbukum/seqkit/errors"
)

// Strategy selects how groups are drained from the source.
type Strategy int

const (
	// Auto slices random-access sources and pulls from everything else.
	Auto Strategy = iota
	// Pull always drains one value at a time.
	Pull
	// Slice cuts groups by index range, falling back to Pull for sources
	// that are not random-access.
	Slice
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Pull:
		return "pull"
	case Slice:
		return "slice"
	default:
		return "auto"
	}
}

// ParseStrategy parses a configuration name. The empty string means Auto.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "pull":
		return Pull, nil
	case "slice":
		return Slice, nil
	default:
		return Auto, errors.InvalidArgument("chunk_strategy", "must be one of auto, pull, slice (got "+name+")")
	}
}

type options struct {
	strategy Strategy
}

// Option configures a chunking operation.
type Option func(*options)

// WithStrategy forces a draining strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
