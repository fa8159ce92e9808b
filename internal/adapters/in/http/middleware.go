package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier. An identifier supplied by
// the caller is kept so failures can be traced across services.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := ctx.Request().Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			ctx.Set("request_id", requestID)
			ctx.Response().Header().Set(requestIDHeader, requestID)

			return next(ctx)
		}
	}
}

// RequestLogger emits one structured log line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			requestID, _ := ctx.Get("request_id").(string)
			logger.Info("http request",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			)

			return err
		}
	}
}
