package app

import (
	"errors"
	"fmt"
)

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidArgument   = "INVALID_ARGUMENT"
	ErrCodeInvalidFormat     = "INVALID_FORMAT"
	ErrCodeUnsupportedOutput = "UNSUPPORTED_OUTPUT"
	ErrCodeGenerationFailed  = "GENERATION_FAILED"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is, or wraps, a CommonError with the given code
func IsCode(err error, code string) bool {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// ValidOutputFormat reports whether format is one of the supported output formats
func ValidOutputFormat(format string) bool {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}
