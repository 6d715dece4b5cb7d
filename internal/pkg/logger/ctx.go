package logger

import (
	"context"

	"github.com/swetha2803/green-avenue-portal/internal/pkg/requestcontext"
)

// withRequestID appends the request ID from the context, when one is set.
func withRequestID(ctx context.Context, fields []Field) []Field {
	if id := requestcontext.GetRequestID(ctx); id != "" {
		fields = append(fields, String("request_id", id))
	}
	return fields
}

// InfoCtx logs an info message enriched with request-scoped fields
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, withRequestID(ctx, fields)...)
}

// WarnCtx logs a warning message enriched with request-scoped fields
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, withRequestID(ctx, fields)...)
}

// ErrorCtx logs an error message enriched with request-scoped fields
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, withRequestID(ctx, fields)...)
}

// DebugCtx logs a debug message enriched with request-scoped fields
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, withRequestID(ctx, fields)...)
}
