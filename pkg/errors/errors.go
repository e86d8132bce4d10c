// Package errors provides structured error types for depscope.
//
// Every failure that reaches a user carries a [Code] so that the CLI and the
// HTTP API can report it consistently:
//
//   - INVALID_INPUT: malformed repository URL or empty request; nothing was fetched
//   - PARSE_ERROR: the manifest did not have the shape its file type requires
//   - UNSUPPORTED_FORMAT: the repository has no recognised manifest
//   - LOOKUP_FAILURE: a remote request (contents, alerts, chat) failed
//   - NOT_FOUND: an unknown server-side resource such as a chat session
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid repository URL: %s", raw)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeLookupFailure, origErr, "fetch alerts for %s/%s", owner, repo)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the inspection pipeline.
const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeParse             Code = "PARSE_ERROR"
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeLookupFailure     Code = "LOOKUP_FAILURE"
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeInternal          Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code the API responds with.
// Errors without a code are treated as internal failures.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeParse, ErrCodeUnsupportedFormat:
		return http.StatusUnprocessableEntity
	case ErrCodeLookupFailure:
		return http.StatusBadGateway
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
