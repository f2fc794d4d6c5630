// Package errors provides the structured error taxonomy used by colorutils.
//
// Every failure in the color packages is reported as an [*Error] carrying a
// small, closed set of machine-readable codes:
//   - INVALID_SYNTAX: the input does not match the notation grammar
//   - NUMBER_CONVERSION_FAILED: a numeric token was present but unparseable
//   - UNSUPPORTED_VALUE: valid CSS that colorutils deliberately does not handle
//   - RANGE_ERROR: a value cannot be exactly represented in a target form
//
// The underlying numeric failure, if any, is retained as the Cause and is
// reachable through the standard errors.Is / errors.As machinery.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSyntax, "missing '#'")
//	if errors.Is(err, errors.ErrCodeInvalidSyntax) {
//	    // Ask the user to fix the input
//	}
//
//	// Keep the strconv failure for diagnostics
//	err := errors.Wrap(errors.ErrCodeNumberConversion, strconvErr, "invalid number %q", tok)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the color parsing and conversion taxonomy.
const (
	ErrCodeInvalidSyntax    Code = "INVALID_SYNTAX"
	ErrCodeNumberConversion Code = "NUMBER_CONVERSION_FAILED"
	ErrCodeUnsupportedValue Code = "UNSUPPORTED_VALUE"
	ErrCodeRange            Code = "RANGE_ERROR"

	// CLI-level errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
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
// Only the outermost *Error in the chain is consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
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
// For *Error types, returns the message without the code prefix, followed
// by the user message of its cause if there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// InvalidSyntax is shorthand for New(ErrCodeInvalidSyntax, ...).
func InvalidSyntax(format string, args ...any) *Error {
	return New(ErrCodeInvalidSyntax, format, args...)
}

// Unsupported is shorthand for New(ErrCodeUnsupportedValue, ...).
func Unsupported(format string, args ...any) *Error {
	return New(ErrCodeUnsupportedValue, format, args...)
}

// NumberConversion wraps a numeric parse failure for the token tok.
func NumberConversion(cause error, tok string) *Error {
	return Wrap(ErrCodeNumberConversion, cause, "could not convert %q to a number", tok)
}
