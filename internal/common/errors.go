package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error kinds of the ingestion pipeline. Handlers wrap these so callers can
// route on errors.Is regardless of where in the chain the failure happened.
var (
	// ErrConfiguration: pipeline disabled, unknown provider family, missing
	// OCR settings row or provider key. Surfaced, never retried.
	ErrConfiguration = errors.New("configuration error")
	// ErrDocumentProcessing: missing input file, unreadable PDF, optimiser
	// or projection failure. Terminalises the affected record.
	ErrDocumentProcessing = errors.New("document processing error")
	// ErrProvider: HTTP failure after the retry budget, malformed or empty
	// model response. Retried inside the adapter only.
	ErrProvider = errors.New("provider error")
	// ErrDuplicate: uniqueness conflict during projection; logged and
	// skipped, never a failure of the staging row.
	ErrDuplicate = errors.New("duplicate record")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ConfigurationError wraps err (may be nil) as an ErrConfiguration kind.
func ConfigurationError(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfiguration, message, err)
	}
	return fmt.Errorf("%w: %s", ErrConfiguration, message)
}

// DocumentProcessingError wraps err as an ErrDocumentProcessing kind.
func DocumentProcessingError(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDocumentProcessing, message, err)
	}
	return fmt.Errorf("%w: %s", ErrDocumentProcessing, message)
}

// ProviderError wraps err as an ErrProvider kind.
func ProviderError(message string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProvider, message, err)
	}
	return fmt.Errorf("%w: %s", ErrProvider, message)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
