package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/devfeed/internal/domain"
)

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLoggerMiddleware gives each request a child logger tagged with a request ID,
// reusing the caller's X-Request-ID when it is a valid UUID.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, err := uuid.Parse(r.Header.Get(requestIDHeader))
		if err != nil {
			requestID = uuid.New()
		}

		logger := domain.LoggerFromContext(r.Context()).With("request_id", requestID.String())
		ctx := domain.ContextWithLogger(r.Context(), logger)
		ctx = domain.ContextWithRequestID(ctx, requestID.String())
		w.Header().Set(requestIDHeader, requestID.String())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.DebugContext(ctx, "handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
