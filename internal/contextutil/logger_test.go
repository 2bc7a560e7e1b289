package contextutil

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestLoggerFromContext_Default(t *testing.T) {
	if got := LoggerFromContext(context.Background()); got != slog.Default() {
		t.Error("LoggerFromContext() on empty context should return the default logger")
	}
}

func TestWithLogger_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := WithLogger(context.Background(), logger)

	if got := LoggerFromContext(ctx); got != logger {
		t.Error("LoggerFromContext() did not return the logger set by WithLogger()")
	}
}

func TestLoggerFromContext_WrongValueType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey(), "not a logger")

	if got := LoggerFromContext(ctx); got != slog.Default() {
		t.Error("LoggerFromContext() should fall back to the default logger for a non-logger value")
	}
}
