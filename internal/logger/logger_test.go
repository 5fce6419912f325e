package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		json, debug bool
		level       zapcore.Level
	}{
		{false, false, zapcore.InfoLevel},
		{true, false, zapcore.InfoLevel},
		{true, true, zapcore.DebugLevel},
	} {
		logger, err := New(tc.json, tc.debug)
		if err != nil {
			t.Fatalf("New(%v, %v) returned error: %v", tc.json, tc.debug, err)
		}
		if !logger.Core().Enabled(tc.level) {
			t.Fatalf("expected level %s to be enabled", tc.level)
		}
		if tc.level == zapcore.InfoLevel && logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug to be disabled")
		}
	}
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"résumé.docx", 6, "résumé..."},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateForLog(tt.in, tt.limit); got != tt.want {
			t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  filename  ", Value: "  cv.pdf  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "filename" || fields[0].String != "cv.pdf" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}
}

func TestWithRequest(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithRequest(zap.New(core), "req-1", "10.0.0.1").Info("scored")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx[FieldRequestID] != "req-1" || ctx[FieldClientIP] != "10.0.0.1" {
		t.Fatalf("unexpected context: %v", ctx)
	}

	// A nil logger falls back to a no-op logger.
	WithRequest(nil, "req-2", "").Info("dropped")
}
