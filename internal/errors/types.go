package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode identifies an operational failure of a confgen run.
type ErrorCode string

const (
	// Manifest errors
	ErrCodeManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	ErrCodeManifestInvalid  ErrorCode = "MANIFEST_INVALID"

	// Input errors
	ErrCodeSourceRead    ErrorCode = "SOURCE_READ"
	ErrCodeSyntax        ErrorCode = "SYNTAX"
	ErrCodeUnknownEntity ErrorCode = "UNKNOWN_ENTITY"

	// Pipeline errors
	ErrCodeDiagnostics  ErrorCode = "DIAGNOSTICS"
	ErrCodeVerifyFailed ErrorCode = "VERIFY_FAILED"
	ErrCodeWriteFailed  ErrorCode = "WRITE_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Error is a structured error with context.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}

	e.Details[key] = value

	return e
}

// ToJSON converts the error to JSON.
func (e *Error) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")

	return string(data)
}

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code.
func Wrap(err error, code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if any error in the chain carries the given code.
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var coded *Error
	if !errors.As(err, &coded) {
		return false
	}

	if coded.Code == code {
		return true
	}

	return Is(coded.Cause, code)
}

// GetCode extracts the outermost error code from an error chain.
func GetCode(err error) ErrorCode {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	return ""
}
