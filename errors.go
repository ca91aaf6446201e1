package sniffkit

import (
	"errors"
	"fmt"
)

// SniffErrorType represents different types of sniffing errors
type SniffErrorType string

const (
	ErrorTypeRead    SniffErrorType = "read"
	ErrorTypePattern SniffErrorType = "pattern"
	ErrorTypeFilter  SniffErrorType = "filter"
	ErrorTypeConfig  SniffErrorType = "config"
)

// SniffError represents a custom error for content inspection.
// It implements the error interface and includes the error type for programmatic handling.
type SniffError struct {
	// Type categorizes the failure (read, pattern, filter, config).
	Type SniffErrorType

	// Message is the human-readable error description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface
func (e *SniffError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *SniffError) Unwrap() error {
	return e.Err
}

// NewSniffError creates a new SniffError
func NewSniffError(errType SniffErrorType, message string) *SniffError {
	return &SniffError{
		Type:    errType,
		Message: message,
	}
}

// WrapSniffError creates a new SniffError wrapping an underlying cause
func WrapSniffError(errType SniffErrorType, message string, err error) *SniffError {
	return &SniffError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsSniffError checks if an error is a SniffError
func IsSniffError(err error) bool {
	var sniffErr *SniffError
	return errors.As(err, &sniffErr)
}

// IsErrorOfType checks if an error is a SniffError of the specified type
func IsErrorOfType(err error, errType SniffErrorType) bool {
	var sniffErr *SniffError
	if errors.As(err, &sniffErr) {
		return sniffErr.Type == errType
	}
	return false
}

// GetErrorType returns the type of a SniffError, or empty string if not a SniffError
func GetErrorType(err error) SniffErrorType {
	var sniffErr *SniffError
	if errors.As(err, &sniffErr) {
		return sniffErr.Type
	}
	return ""
}
