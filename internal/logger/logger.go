package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const dispatchIDKey ctxKey = "dispatchID"

// InitLogger installs the process-wide slog default from the given config.
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter installs the default logger writing to w. Split out so
// tests can capture output.
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs(config.BaseAttributes())
	slog.SetDefault(slog.New(handler))
}

// GenerateDispatchID creates a new UUID for tracing one event dispatch.
func GenerateDispatchID() string {
	return uuid.NewString()
}

// WithDispatchID returns a new context containing the dispatch ID.
func WithDispatchID(ctx context.Context, dispatchID string) context.Context {
	return context.WithValue(ctx, dispatchIDKey, dispatchID)
}

// DispatchIDFromContext extracts the dispatch ID from the context, if present.
func DispatchIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(dispatchIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the dispatch_id attribute when
// present, so every log line from one event's handlers carries the same ID.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := DispatchIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyDispatchID, id)
	}
	return slog.Default()
}
