package proxy

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/logger"
	"github.com/georgemunganga/vendor-portal/internal/web"
)

// Middleware rejects requests whose signature does not verify.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v.disabled {
			logger.FromContext(r.Context()).Debug("proxy signature check bypassed")
			next.ServeHTTP(w, r)
			return
		}

		err := v.Verify(r.URL)
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, ErrSecretNotConfigured):
			web.WriteError(w, r, web.Misconfigured("server misconfigured", err))
		default:
			logger.FromContext(r.Context()).Debug("proxy signature rejected",
				zap.String("raw_query", r.URL.RawQuery))
			web.WriteError(w, r, web.Unauthorized(err.Error(), nil))
		}
	})
}
