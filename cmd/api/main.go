package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/georgemunganga/vendor-portal/internal/config"
	"github.com/georgemunganga/vendor-portal/internal/logger"
	"github.com/georgemunganga/vendor-portal/internal/modules/catalog"
	"github.com/georgemunganga/vendor-portal/internal/modules/order"
	"github.com/georgemunganga/vendor-portal/internal/modules/proxy"
	"github.com/georgemunganga/vendor-portal/internal/modules/upload"
	"github.com/georgemunganga/vendor-portal/internal/shopify"
)

func main() {
	// Production injects the environment directly; .env is a local convenience.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.NewForEnvironment(cfg.App.Env, cfg.Log.Level, cfg.Log.Format)
	defer zl.Sync()
	if envErr != nil {
		zl.Debug("no .env file loaded", zap.Error(envErr))
	}

	// ── Catalog platform ────────────────────────────────────
	shop, err := shopify.NewClient(&shopify.Config{
		Shop:           cfg.Shopify.Shop,
		AccessToken:    cfg.Shopify.AccessToken,
		APIVersion:     cfg.Shopify.APIVersion,
		TimeoutSeconds: cfg.Shopify.TimeoutSeconds,
	})
	if err != nil {
		zl.Fatal("shopify client", zap.Error(err))
	}

	// ── Proxy signature gate ────────────────────────────────
	verifier := proxy.NewVerifier(cfg.Proxy.Secret)
	switch {
	case !cfg.Proxy.Verify:
		verifier = proxy.NewBypassVerifier()
		zl.Warn("APP_PROXY_VERIFY=false: app proxy signatures are NOT checked; never run this way in production")
	case cfg.Proxy.Secret == "":
		zl.Error("SHOPIFY_APP_SECRET is not set: every signed endpoint will answer 500")
	}

	uploads := upload.NewCloudinaryProvider(cfg.Upload.CloudName, cfg.Upload.UploadPreset, cfg.Upload.Folder)
	if _, err := uploads.Target(); err != nil {
		zl.Warn("Cloudinary is not configured; /presign will answer 500", zap.Error(err))
	}

	router := newRouter(zl, routes{
		basePath:       cfg.BasePath(),
		allowedOrigins: cfg.CORS.AllowedOrigins,
		verifier:       verifier,
		catalog:        catalog.NewService(catalog.NewShopifyRepository(shop)),
		orders:         order.NewService(order.NewShopifyRepository(shop)),
		uploads:        uploads,
	})

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Duration(cfg.Shopify.TimeoutSeconds*2+10) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zl.Info("vendor portal starting",
			zap.String("addr", srv.Addr),
			zap.String("base_path", cfg.BasePath()),
			zap.String("shop", cfg.Shopify.Shop))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	zl.Info("vendor portal stopped")
}
