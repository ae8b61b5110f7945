// AngelaMos | 2026
// logger.go

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/carterperez-dev/cskit/internal/core"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// Logger logs one line per request and turns handler panics into 500s.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				if p := recover(); p != nil {
					logger.ErrorContext(r.Context(), "handler panic",
						"panic", p,
						"stack", string(debug.Stack()),
						"request_id", GetRequestID(r.Context()),
					)
					rec.status = http.StatusInternalServerError
					core.JSONError(w, core.NewAppError(
						"INTERNAL_ERROR",
						"an unexpected error occurred",
						http.StatusInternalServerError,
						nil,
					))
				}

				level := slog.LevelInfo
				switch {
				case rec.status >= http.StatusInternalServerError:
					level = slog.LevelError
				case rec.status >= http.StatusBadRequest:
					level = slog.LevelWarn
				}

				logger.Log(r.Context(), level, "http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", rec.status,
					"bytes", rec.bytes,
					"duration", time.Since(start),
					"request_id", GetRequestID(r.Context()),
					"trace_id", core.TraceIDFromContext(r.Context()),
					"role", GetUserRole(r.Context()),
				)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
