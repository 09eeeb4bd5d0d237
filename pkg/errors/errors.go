// Package errors provides structured error types for svgsprite.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library callers
//   - Machine-readable error codes for programmatic handling
//   - Attribution of failures to a shape and/or a sprite mode
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the compilation stages:
//   - INVALID_*: configuration and input validation failures
//   - SIDE_FILE: meta or alignment side-file could not be read or parsed
//   - PARSE_DOCUMENT, TRANSFORM, NAMESPACE, RENDER: shape-scoped failures
//   - COMPOSE: a merged sprite document is not well-formed (mode-scoped)
//   - PARTIAL: a compilation that produced some but not all outputs
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown layout: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle configuration error
//	}
//
//	// Attribute a failure to a shape
//	err := errors.ForShape("icons/home", errors.Wrap(errors.ErrCodeTransform, cause, "svgo"))
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Side-file errors (meta / alignment tables)
	ErrCodeSideFile Code = "SIDE_FILE"

	// Shape-scoped errors
	ErrCodeParseDocument    Code = "PARSE_DOCUMENT"
	ErrCodeTransform        Code = "TRANSFORM"
	ErrCodeUnknownTransform Code = "UNKNOWN_TRANSFORM"
	ErrCodeNamespace        Code = "NAMESPACE"
	ErrCodeRender           Code = "RENDER"

	// Mode-scoped errors
	ErrCodeCompose Code = "COMPOSE"

	// Run-level errors
	ErrCodePartial  Code = "PARTIAL"
	ErrCodeFailed   Code = "FAILED"
	ErrCodeCanceled Code = "CANCELED"

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
// It unwraps the error chain looking for an *Error with a matching code.
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
// Returns empty string if the chain contains no *Error.
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

// ShapeError attributes a failure to a single shape, and optionally to the
// mode that was rendering it.
type ShapeError struct {
	Shape string
	Mode  string
	Err   error
}

// ForShape wraps err with the identifier of the shape it belongs to.
func ForShape(shape string, err error) error {
	if err == nil {
		return nil
	}
	return &ShapeError{Shape: shape, Err: err}
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Mode != "" {
		return fmt.Sprintf("shape %q (mode %s): %v", e.Shape, e.Mode, e.Err)
	}
	return fmt.Sprintf("shape %q: %v", e.Shape, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ShapeError) Unwrap() error { return e.Err }

// ModeError attributes a failure to a whole sprite mode.
type ModeError struct {
	Mode string
	Err  error
}

// ForMode wraps err with the key of the mode it belongs to.
func ForMode(mode string, err error) error {
	if err == nil {
		return nil
	}
	return &ModeError{Mode: mode, Err: err}
}

// Error implements the error interface.
func (e *ModeError) Error() string {
	return fmt.Sprintf("mode %s: %v", e.Mode, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ModeError) Unwrap() error { return e.Err }

// ShapeOf returns the shape identifier carried by err, or "".
func ShapeOf(err error) string {
	var e *ShapeError
	if errors.As(err, &e) {
		return e.Shape
	}
	return ""
}

// ModeOf returns the mode key carried by err, or "".
func ModeOf(err error) string {
	var se *ShapeError
	if errors.As(err, &se) && se.Mode != "" {
		return se.Mode
	}
	var me *ModeError
	if errors.As(err, &me) {
		return me.Mode
	}
	return ""
}
