package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/logger"
	"github.com/georgemunganga/vendor-portal/internal/modules/catalog"
	"github.com/georgemunganga/vendor-portal/internal/modules/order"
	"github.com/georgemunganga/vendor-portal/internal/modules/proxy"
	"github.com/georgemunganga/vendor-portal/internal/modules/upload"
	"github.com/georgemunganga/vendor-portal/internal/web"
)

// routes bundles everything the router mounts.
type routes struct {
	basePath       string
	allowedOrigins []string
	verifier       *proxy.Verifier
	catalog        catalog.Service
	orders         order.Service
	uploads        upload.Provider
}

func newRouter(log *zap.Logger, rt routes) *chi.Mux {
	router := chi.NewRouter()
	router.Use(logger.Middleware(log))
	router.Use(web.Recoverer(log))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", logger.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		web.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	// ── App proxy endpoints (signed by the storefront gateway) ──
	router.Route(rt.basePath, func(r chi.Router) {
		r.Use(rt.verifier.Middleware)
		upload.NewHandler(rt.uploads).RegisterRoutes(r)
		catalog.NewHandler(rt.catalog).RegisterRoutes(r)
		order.NewHandler(rt.orders).RegisterRoutes(r)
	})

	return router
}
