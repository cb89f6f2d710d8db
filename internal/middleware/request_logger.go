package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// リクエストごとのアクセスログを出す。
// 4xxはwarn、5xxはerror。
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logRequest(logger, c, start, err)
			return err
		}
	}
}

func logRequest(logger *slog.Logger, c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	if res.Status >= 400 {
		level = slog.LevelWarn
	}
	if res.Status >= 500 {
		level = slog.LevelError
	}

	logger.LogAttrs(context.Background(), level, "request", fields...)
}
