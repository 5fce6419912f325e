package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server/middleware"
	"github.com/jonathan/resume-scorer/internal/types"
)

const maxFilenameLogLength = 120

// multipartOverheadBytes is the allowance on top of the upload limit for multipart
// boundaries, part headers and form fields.
const multipartOverheadBytes = 64 << 10

// handleRoot returns service status
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Resume scorer API is running",
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleScore scores raw resume text.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreTextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, r, extractValidationErrors(err))
		return
	}

	s.score(w, r, scoring.Request{Text: req.Text, JobDescription: req.JobDescription})
}

// handleScoreFile extracts text from an uploaded document and scores it.
func (s *Server) handleScoreFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverheadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, r, s.bodyError(err, s.maxUploadBytes, "invalid multipart form"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			s.errorResponse(w, r, &ErrValidation{Field: "file", Message: "no file uploaded"})
			return
		}
		s.errorResponse(w, r, s.bodyError(err, s.maxUploadBytes, "unreadable file"))
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > s.maxUploadBytes {
		s.errorResponse(w, r, &ErrPayloadTooLarge{Limit: s.maxUploadBytes})
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if int64(len(data)) > s.maxUploadBytes {
		s.errorResponse(w, r, &ErrPayloadTooLarge{Limit: s.maxUploadBytes})
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, r, &ErrValidation{Field: "file", Message: "uploaded file is empty"})
		return
	}

	filename := filepath.Base(header.Filename)
	text, err := s.extractor.Extract(r.Context(), filename, data)
	if err != nil {
		s.logExtractionFailure(r, filename, err)
		var unsupported *ingestion.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			err = fmt.Errorf("%w (supported: %s)", err, strings.Join(s.extractor.Formats(), ", "))
		}
		s.errorResponse(w, r, err)
		return
	}

	req := scoring.Request{Text: text}
	if jd := r.FormValue("job_description"); jd != "" {
		req.JobDescription = &jd
	}
	s.score(w, r, req)
}

// handleScoreForm renders a structured resume form to text and scores it.
func (s *Server) handleScoreForm(w http.ResponseWriter, r *http.Request) {
	var form types.ResumeForm
	if err := s.decodeJSON(w, r, &form); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := form.Validate(); err != nil {
		s.errorResponse(w, r, extractValidationErrors(err))
		return
	}

	s.score(w, r, scoring.Request{Text: form.Text(), JobDescription: form.JobDescription})
}

func (s *Server) score(w http.ResponseWriter, r *http.Request, req scoring.Request) {
	if err := req.Validate(); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	report, err := s.scorer.Score(r.Context(), req)
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to score resume: %w", err))
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// decodeJSON reads a size-limited JSON body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxTextBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		if strings.HasPrefix(err.Error(), "json: unknown field ") {
			return &ErrValidation{Field: "body", Message: strings.TrimPrefix(err.Error(), "json: ")}
		}
		return s.bodyError(err, s.maxTextBytes, "invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return s.bodyError(err, s.maxTextBytes, "unexpected data after JSON object")
	}
	return nil
}

// bodyError reports a body read failure as too large when the size limit was hit and as
// a validation error otherwise.
func (s *Server) bodyError(err error, limit int64, message string) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return &ErrPayloadTooLarge{Limit: limit}
	}
	return &ErrValidation{Field: "body", Message: message}
}

func (s *Server) logExtractionFailure(r *http.Request, filename string, err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	logger.WithRequest(s.logger, middleware.GetRequestID(r), middleware.ClientIP(r)).Warn("extraction failed",
		append(logger.StringFields(
			logger.StringField{Key: logger.FieldFilename, Value: logger.TruncateForLog(filename, maxFilenameLogLength)},
			logger.StringField{Key: logger.FieldFormat, Value: format},
		), zap.Error(err))...,
	)
}
