package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"projectboard/internal/httputil"

	"github.com/google/uuid"
)

// maxRequestIDLength bounds ids accepted from clients
const maxRequestIDLength = 128

// statusRecorder captures the status written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestID ensures every request has a stable request id:
// it reuses X-Request-Id when present, otherwise generates one, stores it in
// the context, echoes it in the response, and logs the request on completion.
func RequestID(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(httputil.RequestIDHeader))
			if rid == "" || len(rid) > maxRequestIDLength {
				rid = uuid.NewString()
			}

			r = r.WithContext(httputil.WithRequestID(r.Context(), rid))
			w.Header().Set(httputil.RequestIDHeader, rid)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			logger.Info("request",
				"request_id", rid,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"latency", time.Since(start),
			)
		})
	}
}
