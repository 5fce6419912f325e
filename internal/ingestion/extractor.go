// Package ingestion turns uploaded resume files into plain text.
package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DefaultTimeout bounds a single extraction when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Supported formats
const (
	FormatText     = "txt"
	FormatMarkdown = "md"
	FormatPDF      = "pdf"
	FormatDOCX     = "docx"
)

var supportedFormats = []string{FormatText, FormatMarkdown, FormatPDF, FormatDOCX}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]*>`)
)

// Extractor converts document bytes into text based on the file extension.
// The zero value uses DefaultTimeout.
type Extractor struct {
	Timeout time.Duration

	// extract converts data of a supported format; nil means extractFormat.
	extract func(format string, data []byte) (string, error)
}

// NewExtractor creates an Extractor. A non-positive timeout uses DefaultTimeout.
func NewExtractor(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{Timeout: timeout}
}

// Formats lists the supported file extensions, without the leading dot.
func (e *Extractor) Formats() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// Format returns the lowercased extension of filename if it is supported.
func Format(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, f := range supportedFormats {
		if f == ext {
			return ext, nil
		}
	}
	return "", &UnsupportedFormatError{Extension: ext}
}

type extractResult struct {
	text string
	err  error
}

// Extract returns the text content of data, interpreted according to filename's extension.
// Plain text keeps its spacing so formatting problems stay visible to scoring; PDF and DOCX
// output is whitespace-normalized. An empty result is reported as an ExtractionFailureError.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	format, err := Format(filename)
	if err != nil {
		return "", err
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return "", &ExtractionFailureError{Format: format, Message: "cancelled", Cause: err}
	}

	done := make(chan extractResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- extractResult{err: &ExtractionFailureError{
					Format:  format,
					Message: fmt.Sprintf("parser panicked: %v", r),
				}}
			}
		}()
		extract := e.extract
		if extract == nil {
			extract = extractFormat
		}
		text, err := extract(format, data)
		done <- extractResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", &ExtractionFailureError{Format: format, Message: "timed out", Cause: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		if strings.TrimSpace(res.text) == "" {
			return "", &ExtractionFailureError{Format: format, Message: "no text found in document"}
		}
		return res.text, nil
	}
}

// ExtractFile reads path from disk and extracts its text.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	if _, err := Format(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return e.Extract(ctx, filepath.Base(path), data)
}

func extractFormat(format string, data []byte) (string, error) {
	switch format {
	case FormatPDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case FormatDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	default:
		return NormalizeLineEndings(strings.ToValidUTF8(string(data), "")), nil
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionFailureError{Format: FormatPDF, Message: "failed to read pdf", Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionFailureError{
				Format:  FormatPDF,
				Message: fmt.Sprintf("failed to read page %d", i),
				Cause:   err,
			}
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionFailureError{Format: FormatDOCX, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML into text: paragraph ends and breaks become
// newlines, tabs become spaces and the remaining markup is dropped.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, " ")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
