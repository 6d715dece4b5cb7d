package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the context key for user ID
	UserIDKey ContextKey = "user_id"
	// ServiceNameKey is the context key for service name
	ServiceNameKey ContextKey = "service_name"
)

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	UserID      string
	ServiceName string
	StartTime   time.Time
}

// NewRequestContext creates a new request context
func NewRequestContext(serviceName string) *RequestContext {
	return &RequestContext{
		RequestID:   uuid.New().String(),
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}
}

// WithRequestContext adds request context values to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, UserIDKey, reqCtx.UserID)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext extracts request context from an Echo context, reusing an
// upstream request ID when one is present.
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{
		StartTime: time.Now(),
	}

	if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		reqCtx.RequestID = requestID
	} else {
		reqCtx.RequestID = uuid.New().String()
	}

	return reqCtx
}

// GetRequestID extracts the request ID from a context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
