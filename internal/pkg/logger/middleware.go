package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request logging middleware for Echo
func ZapEchoMiddleware(zapLogger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			requestID, _ := c.Get("request_id").(string)

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", statusCode),
				String("client_ip", c.RealIP()),
				String("request_id", requestID),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				zapLogger.Error("Server error", fields...)
			case statusCode >= 400:
				zapLogger.Warn("Client error", fields...)
			default:
				zapLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
