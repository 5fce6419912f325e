// Package server provides the HTTP REST API for the resume scorer.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server/middleware"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

// Size limits applied when Config leaves them unset.
const (
	DefaultMaxUploadBytes int64 = 5 << 20
	DefaultMaxTextBytes   int64 = 256 << 10
)

const shutdownTimeout = 30 * time.Second

// Scorer scores resume text.
type Scorer interface {
	Score(ctx context.Context, req scoring.Request) (*scoring.Report, error)
}

// TextExtractor turns an uploaded document into text.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
	Formats() []string
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	scorer      Scorer
	extractor   TextExtractor

	maxUploadBytes int64
	maxTextBytes   int64
}

// Config holds server configuration
type Config struct {
	Addr           string
	CORSOrigins    []string
	MaxUploadBytes int64
	MaxTextBytes   int64
}

// New creates a new server instance. A nil limiter disables rate limiting and a nil
// logger discards logs.
func New(cfg Config, limiter *ratelimit.Limiter, scorer Scorer, extractor TextExtractor, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if limiter == nil {
		limiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}

	s := &Server{
		logger:         log,
		rateLimiter:    limiter,
		scorer:         scorer,
		extractor:      extractor,
		maxUploadBytes: cfg.MaxUploadBytes,
		maxTextBytes:   cfg.MaxTextBytes,
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = DefaultMaxUploadBytes
	}
	if s.maxTextBytes <= 0 {
		s.maxTextBytes = DefaultMaxTextBytes
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST "+ratelimit.ScorePath, s.handleScore)
	mux.HandleFunc("POST "+ratelimit.ScoreFilePath, s.handleScoreFile)
	mux.HandleFunc("POST "+ratelimit.ScoreFormPath, s.handleScoreForm)

	s.handler = middleware.Recover(log)(
		middleware.RequestID(
			middleware.Logging(log)(
				middleware.CORS(cfg.CORSOrigins)(
					s.withRateLimit(mux)))))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves requests until ctx is cancelled or the listener fails, then shuts down
// gracefully and stops the rate limiter.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.rateLimiter.Stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(middleware.ClientIP(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// ErrorBody is the JSON shape of every non-2xx response other than 429.
type ErrorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// errorResponse maps err to a status and writes the standard error body. Internal errors
// are logged and replaced by a generic message.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	requestID := middleware.GetRequestID(r)
	message := err.Error()

	reqLog := logger.WithRequest(s.logger, requestID, middleware.ClientIP(r))
	if status == http.StatusInternalServerError {
		reqLog.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		message = "An unexpected error occurred."
	} else {
		reqLog.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}

	s.jsonResponse(w, status, ErrorBody{
		Error:     ErrorCode(err),
		Message:   message,
		RequestID: requestID,
	})
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":      CodeRateLimitExceeded,
		"message":    "Rate limit exceeded. Please try again later.",
		"request_id": middleware.GetRequestID(r),
		"limit":      info.Limit,
		"remaining":  info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.UTC().Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		retryAfter := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = retryAfter
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}

	logger.WithRequest(s.logger, middleware.GetRequestID(r), middleware.ClientIP(r)).Warn("rate limit exceeded",
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
		zap.Duration("retry_after", info.RetryAfter),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
