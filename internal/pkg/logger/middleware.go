package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EchoMiddleware creates request-logging middleware for Echo using the
// application Zap logger.
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get user identity if the JWT middleware set one
			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			fields := []zap.Field{
				zap.Int("status", statusCode),
				zap.String("latency", latency.String()),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", clientIP),
				zap.String("method", method),
				zap.String("path", path),
				zap.String("user_id", userIDStr),
				zap.String("request_id", requestID),
			}

			// Log with appropriate level
			switch {
			case statusCode >= 500:
				if err != nil {
					fields = append(fields, zap.Error(err))
				}
				logger.Error("Server error", fields...)
			case statusCode >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
