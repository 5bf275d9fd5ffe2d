package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Study specific errors
	CodeSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	CodeGenerationPending ErrorCode = "GENERATION_PENDING"
	CodeInputRejected     ErrorCode = "INPUT_REJECTED"
	CodeNotReady          ErrorCode = "NOT_READY"
	CodeGenerationFailed  ErrorCode = "GENERATION_FAILED"
	CodeUnsupportedFile   ErrorCode = "UNSUPPORTED_FILE"
	CodeFileTooLarge      ErrorCode = "FILE_TOO_LARGE"
	CodeUnknownRoute      ErrorCode = "UNKNOWN_ROUTE"
	CodeIndexOutOfRange   ErrorCode = "INDEX_OUT_OF_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair reported back to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found with ID: %s", sessionID), nil).
		WithContext("session_id", sessionID)
}

func NewGenerationPendingError(page string) *DomainError {
	return NewError(CodeGenerationPending, fmt.Sprintf("A %s generation is already in progress", page), nil).
		WithContext("page", page)
}

func NewInputRejectedError(page, reason string) *DomainError {
	return NewError(CodeInputRejected, reason, nil).WithContext("page", page)
}

func NewNotReadyError(page string) *DomainError {
	return NewError(CodeNotReady, fmt.Sprintf("No %s result to act on yet", page), nil).
		WithContext("page", page)
}

func NewGenerationFailedError(page string, err error) *DomainError {
	return NewError(CodeGenerationFailed, fmt.Sprintf("Failed to generate %s", page), err).
		WithContext("page", page)
}

func NewUnsupportedFileError(name, contentType string) *DomainError {
	return NewError(CodeUnsupportedFile, fmt.Sprintf("Only PDF documents are supported, got %q", contentType), nil).
		WithContext("file_name", name)
}

func NewFileTooLargeError(size, limit int64) *DomainError {
	return NewError(CodeFileTooLarge, fmt.Sprintf("File is %d bytes, the limit is %d bytes", size, limit), nil).
		WithContext("limit", limit)
}

func NewUnknownRouteError(href string) *DomainError {
	return NewError(CodeUnknownRoute, fmt.Sprintf("Unknown route: %s", href), nil)
}

func NewIndexOutOfRangeError(index, length int) *DomainError {
	return NewError(CodeIndexOutOfRange, fmt.Sprintf("Index %d is outside [0, %d)", index, length), nil).
		WithContext("index", index).
		WithContext("length", length)
}
