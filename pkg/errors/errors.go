// Package errors provides structured error types for shadercopy.
//
// Errors carry a machine-readable [Code] so that callers (the CLI, embedding
// applications) can tell hard failures from soft, best-effort ones:
//
//   - NOT_FOUND / MATERIAL_NOT_FOUND: a referenced material does not exist
//   - VALIDATION / INVALID_*: input text or arguments are malformed
//   - UNSUPPORTED_NODE / PARTIAL_LINK: soft issues recorded during conversion
//   - CLIPBOARD_UNAVAILABLE / STORAGE / INTERNAL: environment failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeValidation, "missing field %q", "nodes")
//	if errors.Is(err, errors.ErrCodeValidation) {
//	    // reject the paste
//	}
//
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "save material %s", name)
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
	ErrCodeValidation    Code = "VALIDATION"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeMaterialNotFound Code = "MATERIAL_NOT_FOUND"

	// Soft conversion issues
	ErrCodeUnsupportedNode Code = "UNSUPPORTED_NODE"
	ErrCodePartialLink     Code = "PARTIAL_LINK"

	// Environment errors
	ErrCodeClipboardUnavailable Code = "CLIPBOARD_UNAVAILABLE"
	ErrCodeStorage              Code = "STORAGE"
	ErrCodeInternal             Code = "INTERNAL_ERROR"
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
// NOT_FOUND also matches the more specific MATERIAL_NOT_FOUND.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code || (code == ErrCodeNotFound && e.Code == ErrCodeMaterialNotFound) {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the error code from an error, if available.
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
		if e.Cause != nil && e.Code == ErrCodeValidation {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsSoft reports whether the code denotes a best-effort issue that callers
// record and continue past.
func IsSoft(code Code) bool {
	return code == ErrCodeUnsupportedNode || code == ErrCodePartialLink
}
