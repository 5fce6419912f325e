package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

// Error codes returned in the "error" field of every error body.
const (
	CodeInvalidInput      = "invalid_input"
	CodeUnsupportedFormat = "unsupported_format"
	CodeExtractionFailure = "extraction_failure"
	CodePayloadTooLarge   = "payload_too_large"
	CodeRateLimitExceeded = "rate_limit_exceeded"
	CodeInternal          = "internal_error"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates the request body exceeded its size limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds the %d byte limit", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		tooLargeErr    *ErrPayloadTooLarge
		invalidErr     *scoring.InvalidInputError
		unsupportedErr *ingestion.UnsupportedFormatError
		extractionErr  *ingestion.ExtractionFailureError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code for an error.
func ErrorCode(err error) string {
	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		return CodeInvalidInput
	case http.StatusRequestEntityTooLarge:
		return CodePayloadTooLarge
	case http.StatusUnsupportedMediaType:
		return CodeUnsupportedFormat
	case http.StatusUnprocessableEntity:
		return CodeExtractionFailure
	default:
		return CodeInternal
	}
}

// extractValidationErrors converts validator errors into an ErrValidation naming the
// first failing field.
func extractValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}
