// Package errors provides the structured error type shared by every seqkit
// package. Each failure carries a machine-readable code so callers can branch
// on the kind of failure with errors.Is against the exported sentinels.
package errors
