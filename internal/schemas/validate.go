// Package schemas provides JSON Schema validation for the score report.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed score_report.schema.json
var scoreReportSchema []byte

const scoreReportSchemaName = "score_report.schema.json"

var (
	reportSchemaOnce sync.Once
	reportSchema     *gojsonschema.Schema
	reportSchemaErr  error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ScoreReportSchema returns a copy of the embedded score report schema.
func ScoreReportSchema() []byte {
	out := make([]byte, len(scoreReportSchema))
	copy(out, scoreReportSchema)
	return out
}

func compiledReportSchema() (*gojsonschema.Schema, error) {
	reportSchemaOnce.Do(func() {
		reportSchema, reportSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(scoreReportSchema))
		if reportSchemaErr != nil {
			reportSchemaErr = &SchemaLoadError{
				Path:    scoreReportSchemaName,
				Message: "embedded schema is invalid",
				Cause:   reportSchemaErr,
			}
		}
	})
	return reportSchema, reportSchemaErr
}

// ValidateReport validates a score report against the embedded schema. The report is
// marshalled with encoding/json, so any value with the report's JSON shape is accepted.
func ValidateReport(report any) error {
	schema, err := compiledReportSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(report))
	if err != nil {
		return fmt.Errorf("failed to load report document: %w", err)
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
