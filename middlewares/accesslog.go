package middlewares

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/devportal/internal"
)

// AccessLogOption configures the access log middleware.
type AccessLogOption func(*accessLogConfig)

type accessLogConfig struct {
	skip []string
}

// WithSkipPaths suppresses logging for paths with any of the given prefixes.
func WithSkipPaths(prefixes ...string) AccessLogOption {
	return func(cfg *accessLogConfig) {
		cfg.skip = append(cfg.skip, prefixes...)
	}
}

// AccessLog logs one record per request after it completes.
// Server errors log at error level, client errors at warn.
func AccessLog(opts ...AccessLogOption) internal.Middleware {
	cfg := &accessLogConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range cfg.skip {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			start := time.Now()
			err := next(c)

			status := http.StatusOK
			var size int64
			if rw, ok := c.Response().(*internal.ResponseWriter); ok {
				status = rw.Status()
				size = rw.Size()
			}
			if err != nil && !c.Written() {
				status = http.StatusInternalServerError
				if httpErr := internal.AsHTTPError(err); httpErr != nil {
					status = httpErr.Code
				}
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("size", size),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request completed", attrs...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}

			return err
		}
	}
}
