// Package errors provides domain-specific error types for runlog.
//
// Errors carry a code so callers can tell a configuration problem from a log
// file that could not be written without matching on message text.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeFile indicates the log file could not be removed, opened or appended to.
	ErrCodeFile ErrorCode = "FILE_ERROR"

	// ErrCodeClosed indicates a record was issued on a writer that has already ended its log.
	ErrCodeClosed ErrorCode = "CLOSED_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewFileError creates a new log file error.
func NewFileError(message string, cause error) *Error {
	return Wrap(ErrCodeFile, message, cause)
}

// NewClosedError creates an error for a record issued after the log has ended.
func NewClosedError(path string) *Error {
	return New(ErrCodeClosed, fmt.Sprintf("log %s already ended", path))
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// Sentinel values for errors.Is checks by code.
var (
	ErrConfig     = New(ErrCodeConfig, "")
	ErrValidation = New(ErrCodeValidation, "")
	ErrFile       = New(ErrCodeFile, "")
	ErrClosed     = New(ErrCodeClosed, "")
)
