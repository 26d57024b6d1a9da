package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type returned by seqkit operations.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Sentinels for errors.Is matching. Any *AppError with the same code matches.
// They are shared values: the With* methods return copies, so deriving a
// detailed error from a sentinel leaves it unchanged.
var (
	ErrInvalidArgument       = &AppError{Code: ErrCodeInvalidArgument, Message: "invalid argument"}
	ErrEmptySequence         = &AppError{Code: ErrCodeEmptySequence, Message: "empty sequence"}
	ErrTooManyElements       = &AppError{Code: ErrCodeTooManyElements, Message: "too many elements"}
	ErrNotFound              = &AppError{Code: ErrCodeNotFound, Message: "no such element"}
	ErrReuseAfterConsumption = &AppError{Code: ErrCodeReuseAfterConsumption, Message: "pipeline already consumed"}
)

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an *AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// clone returns a shallow copy of e with its own Details map.
func (e *AppError) clone() *AppError {
	c := *e
	if e.Details != nil {
		c.Details = make(map[string]any, len(e.Details))
		for k, v := range e.Details {
			c.Details[k] = v
		}
	}
	return &c
}

// WithCause returns a copy of the error with cause set.
func (e *AppError) WithCause(cause error) *AppError {
	c := e.clone()
	c.Cause = cause
	return c
}

// WithDetails returns a copy of the error with details merged in.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	c := e.clone()
	if c.Details == nil {
		c.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		c.Details[k] = v
	}
	return c
}

// WithDetail returns a copy of the error with a single detail set.
func (e *AppError) WithDetail(key string, value any) *AppError {
	return e.WithDetails(map[string]any{key: value})
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// InvalidArgument creates an AppError for an argument outside its domain,
// such as a non-positive chunk size or a negative take count.
func InvalidArgument(param, reason string) *AppError {
	details := make(map[string]any)
	if param != "" {
		details["param"] = param
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument %s: %s", param, reason),
		Details: details,
	}
}

// EmptySequence creates an AppError for an operation that needed at least one value.
func EmptySequence(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmptySequence, Message: fmt.Sprintf("%s: empty sequence", operation),
		Details: map[string]any{"operation": operation},
	}
}

// TooManyElements creates an AppError for an operation that allowed at most one value.
func TooManyElements(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTooManyElements, Message: fmt.Sprintf("%s: more than one element", operation),
		Details: map[string]any{"operation": operation},
	}
}

// NotFound creates an AppError for a search that matched nothing.
func NotFound(operation string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s: no such element", operation),
		Details: map[string]any{"operation": operation},
	}
}

// ReuseAfterConsumption creates an AppError for a pipeline used after it was spent.
func ReuseAfterConsumption(operation, pipelineID string) *AppError {
	details := map[string]any{"operation": operation}
	if pipelineID != "" {
		details["pipeline_id"] = pipelineID
	}
	return &AppError{
		Code: ErrCodeReuseAfterConsumption, Message: fmt.Sprintf("%s: pipeline already consumed", operation),
		Details: details,
	}
}

// Internal creates an AppError wrapping a failure raised by a source or callback.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "sequence evaluation failed",
		Cause: cause,
	}
}

// Wrap converts err to an AppError. An AppError anywhere in the chain is
// returned as is; any other error becomes an INTERNAL_ERROR caused by err.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// CodeOf returns the code of the outermost AppError in err's chain,
// or the empty code when there is none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
