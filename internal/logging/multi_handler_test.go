package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/osdetect/internal/errors"
)

func TestMultiHandler_FansOut(t *testing.T) {
	var console, file bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
		nil,
	)
	logger := slog.New(h).With("component", "detector")

	logger.Debug("cache miss")
	logger.Warn("os-release missing NAME")

	if strings.Contains(console.String(), "cache miss") {
		t.Errorf("console should not receive debug records: %q", console.String())
	}
	if !strings.Contains(console.String(), "component=detector") {
		t.Errorf("console missing inherited attr: %q", console.String())
	}
	if !strings.Contains(file.String(), `"msg":"cache miss"`) {
		t.Errorf("file handler missing debug record: %q", file.String())
	}
	if got := strings.Count(file.String(), "\n"); got != 2 {
		t.Errorf("file handler got %d records, want 2", got)
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(
		NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if !h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("Info should be enabled when any handler accepts it")
	}
	if h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("Debug should be disabled when no handler accepts it")
	}
}

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestMultiHandler_JoinsHandlerErrors(t *testing.T) {
	errConsole := errors.New("console closed")
	errFile := errors.New("log file full")
	var file bytes.Buffer
	h := NewMultiHandler(
		failingHandler{Handler: NewHandler(&bytes.Buffer{}, nil), err: errConsole},
		slog.NewJSONHandler(&file, nil),
		failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil), err: errFile},
	)

	err := h.Handle(t.Context(), slog.NewRecord(time.Now(), slog.LevelInfo, "detected", 0))
	if !errors.Is(err, errConsole) || !errors.Is(err, errFile) {
		t.Errorf("Handle() error = %v, want both handler errors", err)
	}
	if !strings.Contains(file.String(), `"msg":"detected"`) {
		t.Errorf("healthy handler should still receive the record: %q", file.String())
	}
}

func TestMultiHandler_NoErrors(t *testing.T) {
	h := NewMultiHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	if err := h.Handle(t.Context(), slog.NewRecord(time.Now(), slog.LevelInfo, "ok", 0)); err != nil {
		t.Errorf("Handle() error = %v, want nil", err)
	}
}
