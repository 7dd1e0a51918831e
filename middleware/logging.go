package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"shop-api/utils"

	"github.com/google/uuid"
)

// responseWriter wraps http.ResponseWriter to capture the response status.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one structured line per request with a generated
// request id, method, path, status and duration.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			log.Info("request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// Recover turns panics into the standard 500 envelope. The stack is included
// in the body only outside production.
func Recover(log *slog.Logger, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := string(debug.Stack())
					log.Error("panic", "error", fmt.Sprint(rec), "stack", stack)
					if production {
						utils.Error(w, http.StatusInternalServerError, "Internal server error.")
						return
					}
					utils.JSON(w, http.StatusInternalServerError, map[string]string{
						"message": fmt.Sprint(rec),
						"stack":   stack,
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
