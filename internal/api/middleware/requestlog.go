// Package middleware provides Echo middleware for the InventSync API.
package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that emits one structured log line per
// request. Every request carries an X-Request-ID: callers may supply one,
// otherwise one is minted here, and it is echoed back on the response so
// clients can quote it when reporting problems.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := requestID(c)
			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			fields := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
				"remote_ip", c.RealIP(),
			}
			if err != nil {
				log.Error("request", append(fields, "error", err)...)
				return err
			}
			log.Info("request", fields...)

			return nil
		}
	}
}

func requestID(c echo.Context) string {
	if id := c.Request().Header.Get(requestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
