// Package errors provides structured error types for the to-wit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Messages are plain strings so they can cross the ffi
// boundary unchanged.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseQuery, "function", "area")
//	err := errors.TypeMismatch(errors.PhaseQuery, "field walk", "record", "list")
//
// All errors implement the standard error interface and support
// errors.Is/As; Is matches on (Phase, Kind).
package errors
