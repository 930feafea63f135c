package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeMissingFile          ErrorType = "missing_file"
	ErrorTypeUnsupportedMediaType ErrorType = "unsupported_media_type"
	ErrorTypeFileTooLarge         ErrorType = "file_too_large"
	ErrorTypeExtractionFailed     ErrorType = "extraction_failed"
	ErrorTypeGenerationFailed     ErrorType = "generation_failed"
	ErrorTypeInternal             ErrorType = "internal"
)

// Messages returned to API callers. Extraction and generation failures share one message.
const (
	MsgNoFileUploaded    = "No file uploaded."
	MsgUnsupportedType   = "Unsupported file type."
	MsgFileTooLarge      = "File too large."
	MsgSummaryGenFailure = "Failed to generate summary."
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewMissingFileError is returned when the upload carries no document part.
func NewMissingFileError() *AppError {
	return &AppError{
		Type:       ErrorTypeMissingFile,
		Message:    MsgNoFileUploaded,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnsupportedMediaTypeError is returned before any extraction is attempted.
func NewUnsupportedMediaTypeError(mediaType string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupportedMediaType,
		Message:    MsgUnsupportedType,
		Details:    mediaType,
		StatusCode: http.StatusBadRequest,
	}
}

// NewFileTooLargeError is returned when the request body exceeds the configured limit.
func NewFileTooLargeError(limit int64) *AppError {
	return &AppError{
		Type:       ErrorTypeFileTooLarge,
		Message:    MsgFileTooLarge,
		Details:    fmt.Sprintf("limit %d bytes", limit),
		StatusCode: http.StatusRequestEntityTooLarge,
	}
}

// NewExtractionError wraps a PDF or OCR delegate failure
func NewExtractionError(details string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtractionFailed,
		Message:    MsgSummaryGenFailure,
		Details:    details,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewGenerationError wraps a generative service failure
func NewGenerationError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeGenerationFailed,
		Message:    MsgSummaryGenFailure,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text safe to show to API callers.
// Causes and details never leave the server.
func PublicMessage(err error) string {
	if appErr, ok := As(err); ok && appErr.Type != ErrorTypeInternal {
		return appErr.Message
	}
	return MsgSummaryGenFailure
}
