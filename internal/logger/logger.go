package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// InitLogger installs the process-wide slog logger described by cfg, writing to stdout.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the process-wide slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var h slog.Handler
	if cfg.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	h = h.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(h))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetRequestID returns the request ID or an empty string.
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}

func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }
func Info(msg string, args ...any)  { slog.Default().Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Default().Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
