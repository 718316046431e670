package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Color errors
	ErrInvalidFormat     ErrorCode = "INVALID_FORMAT"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrColorscheme       ErrorCode = "COLORSCHEME"

	// Blueprint errors
	ErrMalformedDirective ErrorCode = "MALFORMED_DIRECTIVE"
	ErrInvalidDirective   ErrorCode = "INVALID_DIRECTIVE"
	ErrBlueprint          ErrorCode = "BLUEPRINT"

	// Environment errors
	ErrExecution ErrorCode = "EXECUTION"
	ErrSystem    ErrorCode = "SYSTEM"
)

// ChromasyncError represents a structured error with code and details
type ChromasyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ChromasyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ChromasyncError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ChromasyncError) Is(target error) bool {
	var targetErr *ChromasyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ChromasyncError with the given code and message
func New(code ErrorCode, message string) *ChromasyncError {
	return &ChromasyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ChromasyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ChromasyncError {
	return &ChromasyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ChromasyncError
func Wrap(err error, code ErrorCode, message string) *ChromasyncError {
	if err == nil {
		return nil
	}
	return &ChromasyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ChromasyncError {
	if err == nil {
		return nil
	}
	return &ChromasyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ChromasyncError) WithDetail(key string, value interface{}) *ChromasyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var chromaErr *ChromasyncError
	if errors.As(err, &chromaErr) {
		return chromaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ChromasyncError
func GetErrorCode(err error) ErrorCode {
	var chromaErr *ChromasyncError
	if errors.As(err, &chromaErr) {
		return chromaErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ChromasyncError
func GetErrorDetails(err error) map[string]interface{} {
	var chromaErr *ChromasyncError
	if errors.As(err, &chromaErr) {
		return chromaErr.Details
	}
	return nil
}
