package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/predictclass/pkg/idx"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// HTTPMiddleware attaches a request scoped logger to the context and logs one
// line per request once the handler returns.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = idx.New().String()
			}
			rw.Header().Set(RequestIDHeader, reqID)

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
			)

			next.ServeHTTP(rw, r.WithContext(WithContext(r.Context(), logger)))

			level := slog.LevelInfo
			if rw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "http_request",
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
