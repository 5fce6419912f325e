package ingestion

import "fmt"

// UnsupportedFormatError represents a file whose extension has no extractor
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("unsupported file format: %s", ext)
}

// ExtractionFailureError represents a supported file that could not be turned into text
type ExtractionFailureError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text: %s", e.Format, e.Message)
}

func (e *ExtractionFailureError) Unwrap() error {
	return e.Cause
}
