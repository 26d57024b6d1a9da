package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a size, count or index outside its domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Cardinality errors
const (
	// ErrCodeEmptySequence indicates at least one value was required but none was produced.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeTooManyElements indicates at most one value was allowed but more were produced.
	ErrCodeTooManyElements ErrorCode = "TOO_MANY_ELEMENTS"
	// ErrCodeNotFound indicates no value matched and no default was supplied.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Lifecycle errors
const (
	// ErrCodeReuseAfterConsumption indicates a pipeline was used after it was spent.
	ErrCodeReuseAfterConsumption ErrorCode = "REUSE_AFTER_CONSUMPTION"
)

// Internal errors
const (
	// ErrCodeInternal indicates a failure raised by a source or a user callback.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var knownCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument:       true,
	ErrCodeEmptySequence:         true,
	ErrCodeTooManyElements:       true,
	ErrCodeNotFound:              true,
	ErrCodeReuseAfterConsumption: true,
	ErrCodeInternal:              true,
}

// IsKnownCode reports whether code is one of the codes defined by this package.
func IsKnownCode(code ErrorCode) bool {
	return knownCodes[code]
}
