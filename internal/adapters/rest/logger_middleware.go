package rest

import (
	"net/http"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// requestTraceID берет trace_id вызывающей стороны, если это корректный UUID, иначе создает новый
func requestTraceID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(traceIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// LoggerMiddleware кладет в контекст запроса логгер с trace_id и пишет начало и конец запроса.
// Ответы 5xx пишутся как предупреждение.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := requestTraceID(r)
			reqLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			accessLogger := reqLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
			})

			ctx := contextkeys.ContextWithTraceID(contextkeys.ContextWithLogger(r.Context(), reqLogger), traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(traceIDHeader, traceID)

			started := time.Now()
			accessLogger.Debug("Request started", port.Fields{"remote_addr": r.RemoteAddr})

			next.ServeHTTP(ww, r.WithContext(ctx))

			summary := port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(started).Milliseconds(),
			}
			if ww.Status() >= http.StatusInternalServerError {
				accessLogger.Warn("Request finished with server error", summary)
				return
			}
			accessLogger.Info("Request finished", summary)
		})
	}
}
