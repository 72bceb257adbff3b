// Package errors provides the classified error primitives used across tmpltime.
//
// Every failure raised by the datetime pipeline is a ClassifiedError whose category names
// the kind of failure (missing parameter, invalid integer, out of range, ...) and whose
// context records the offending option key under ContextParameter.
//
// Key features:
//   - ErrorCategory: failure kind (invalid_integer, field_out_of_range, invalid_timezone, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity, and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and log output for the command line
//
// Example usage:
//
//	err := errors.InvalidInteger("Invalid day parameter").
//		ForParameter("with_day").
//		WithCause(parseErr).
//		Build()
package errors
