// Package errors provides structured error types for listview.
//
// This package defines error codes and types that enable:
//   - Consistent failure reporting across the engine, transcript, and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The engine distinguishes three failure kinds:
//   - ACCESSOR_FAILURE: a node field could not be read through the structure accessor
//   - SINK_FAILURE: a diagram or transcript entry could not be written
//   - CONFIGURATION_FAILURE: an accessor, engine, or config file could not be set up
//
// The remaining codes (INVALID_*, FILE_NOT_FOUND, INTERNAL_ERROR) are used by the
// script runner and the CLI.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "no header field in %s", typ)
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // refuse to start
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeSink, origErr, "write diagram")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Engine failures
	ErrCodeAccessor      Code = "ACCESSOR_FAILURE"
	ErrCodeSink          Code = "SINK_FAILURE"
	ErrCodeConfiguration Code = "CONFIGURATION_FAILURE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidScript Code = "INVALID_SCRIPT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code,
// so an accessor failure wrapped by the engine still reports ACCESSOR_FAILURE.
func Is(err error, code Code) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
