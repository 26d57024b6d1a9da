// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers with structured fields. Library code defaults to
// [Nop] so nothing is written unless a caller supplies a logger.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pipeline")
//	log.Debug("terminal completed", logger.Fields("operation", "to_list"))
package logger
