package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-Id"

// Middleware assigns a request id, stores a request-scoped logger in the
// request context and logs one line per request once it completes.
func Middleware(base *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			ctx, reqLogger := WithRequestID(r.Context(), base, requestID)
			reqLogger = reqLogger.With(
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			ctx = WithContext(ctx, reqLogger)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("client_ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("body_size", ww.BytesWritten()),
			}

			msg := "HTTP Request"
			switch {
			case status >= 500:
				reqLogger.Error(msg, fields...)
			case status >= 400:
				reqLogger.Warn(msg, fields...)
			default:
				reqLogger.Info(msg, fields...)
			}
		})
	}
}
