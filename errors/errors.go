// Package errors defines the error taxonomy for the jsonval codec
// boundary. Lookup misses and typed-projection failures are never
// errors; everything here concerns the byte-level decode and encode
// paths only.
package errors

import (
	"errors"
	"fmt"
)

// Standard codec errors
var (
	ErrEmptyInput   = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON  = errors.New("invalid JSON format")
	ErrMultipleJSON = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFragmentRoot = errors.New("top-level value is a fragment, not an object or array")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeDecode  ErrorType = "decode"
	ErrorTypeEncode  ErrorType = "encode"
	ErrorTypeUnknown ErrorType = "unknown"
)

// CodecError is a codec-boundary error with context. The underlying
// codec's error is carried unmodified in Err and reachable through
// Unwrap, so callers can match on the original failure.
type CodecError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *CodecError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison by error type
func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input handling
func NewInputError(message string, err error) *CodecError {
	return &CodecError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewDecodeError creates a new error related to decoding JSON bytes
func NewDecodeError(message string, err error) *CodecError {
	return &CodecError{
		Type:    ErrorTypeDecode,
		Message: message,
		Err:     err,
	}
}

// NewEncodeError creates a new error related to serializing a value
func NewEncodeError(message string, err error) *CodecError {
	return &CodecError{
		Type:    ErrorTypeEncode,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		switch codecErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", codecErr.Message)
		case ErrorTypeDecode:
			return fmt.Sprintf("JSON decoding error: %s", codecErr.Message)
		case ErrorTypeEncode:
			return fmt.Sprintf("JSON encoding error: %s", codecErr.Message)
		default:
			return fmt.Sprintf("Error: %s", codecErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object or array."
	}
	if errors.Is(err, ErrFragmentRoot) {
		return "Error: The top-level value is a bare scalar. Enable fragment tolerance to accept it."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
