package web

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/logger"
)

// Recoverer turns a handler panic into a logged 500 with the usual error body.
func Recoverer(base *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				base.Error("Panic recovered",
					zap.String("request_id", logger.RequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("error", rec),
					zap.Stack("stacktrace"),
				)
				WriteError(w, r, fmt.Errorf("panic: %v", rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
