package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// RequestLogger logs one line per request once the handler returns.
// Server errors log at error level, everything else at info.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			capture := newResponseCapture(w, false)

			next.ServeHTTP(capture, r)

			level := slog.LevelInfo
			if capture.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logger.LogAttrs(r.Context(), level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routeOf(r)),
				slog.Int("status", capture.statusCode),
				slog.Int("bytes", capture.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", RequestIDFromContext(r.Context())),
			)
		})
	}
}

// routeOf returns the ServeMux pattern that served r. The mux sets it on the
// request it was given, so this only works for middleware that passes r
// through unchanged.
func routeOf(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}
	return r.Pattern
}
