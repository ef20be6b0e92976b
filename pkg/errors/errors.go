package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors the analysis engine can report
type ErrorType string

const (
	// ErrorTypeInsufficientData signals that post-derived signals could not be
	// computed and the caller should proceed with a profile-only vector.
	ErrorTypeInsufficientData ErrorType = "insufficient_data"

	// ErrorTypeInvalidRecord signals that an input record violates a field
	// invariant (for example a negative count). Fatal for that call.
	ErrorTypeInvalidRecord ErrorType = "invalid_record"

	// ErrorTypeConfiguration signals malformed engine configuration, such as a
	// declared topic with an empty keyword set. Raised at construction time.
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents an engine error with type information
type Error struct {
	Type    ErrorType
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// NewInsufficientData creates an insufficient-data error
func NewInsufficientData(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeInsufficientData, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidRecord creates an invalid-record error
func NewInvalidRecord(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeInvalidRecord, Message: fmt.Sprintf(format, args...)}
}

// NewConfiguration creates a configuration error
func NewConfiguration(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// IsInsufficientData checks if an error is an insufficient-data error
func IsInsufficientData(err error) bool {
	return hasType(err, ErrorTypeInsufficientData)
}

// IsInvalidRecord checks if an error is an invalid-record error
func IsInvalidRecord(err error) bool {
	return hasType(err, ErrorTypeInvalidRecord)
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

// IsRecoverable checks if an error type allows the orchestrator to continue
// in degraded mode instead of failing the whole call
func IsRecoverable(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeInsufficientData:
		return true
	case ErrorTypeInvalidRecord, ErrorTypeConfiguration:
		return false
	default:
		return false
	}
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}
