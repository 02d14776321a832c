package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every setting the portal reads at startup. It is built once by
// Load and must not be mutated afterwards.
type Config struct {
	App     AppConfig
	Shopify ShopifyConfig
	Proxy   ProxyConfig
	Upload  UploadConfig
	Log     LogConfig
	CORS    CORSConfig
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Env  string
	Port string
}

// ShopifyConfig holds the Admin API connection settings.
type ShopifyConfig struct {
	Shop           string
	AccessToken    string
	APIVersion     string
	TimeoutSeconds int
}

// ProxyConfig controls the app proxy mount point and signature checks.
// Verify is only ever false when APP_PROXY_VERIFY is set to "false".
type ProxyConfig struct {
	Subpath string
	Verify  bool
	Secret  string
}

// UploadConfig holds the public Cloudinary unsigned-upload target.
type UploadConfig struct {
	CloudName    string
	UploadPreset string
	Folder       string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// CORSConfig lists the origins allowed to call the portal directly.
type CORSConfig struct {
	AllowedOrigins []string
}

const (
	defaultAPIVersion     = "2024-10"
	defaultPort           = "3000"
	defaultSubpath        = "vendor-portal"
	defaultTimeoutSeconds = 15
)

var (
	ErrMissingShop        = errors.New("config: SHOPIFY_SHOP is required")
	ErrMissingAccessToken = errors.New("config: SHOPIFY_ADMIN_ACCESS_TOKEN is required")
	ErrInvalidSubpath     = errors.New("config: APP_PROXY_SUBPATH must not contain '/'")
)

// Load reads the configuration from the environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() (*Config, error) {
	timeout, err := intEnv("SHOPIFY_TIMEOUT_SECONDS", defaultTimeoutSeconds)
	if err != nil {
		return nil, err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = env("APP_PORT", defaultPort)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  env("APP_ENV", "development"),
			Port: port,
		},
		Shopify: ShopifyConfig{
			Shop:           strings.TrimSpace(os.Getenv("SHOPIFY_SHOP")),
			AccessToken:    strings.TrimSpace(os.Getenv("SHOPIFY_ADMIN_ACCESS_TOKEN")),
			APIVersion:     env("API_VERSION", defaultAPIVersion),
			TimeoutSeconds: timeout,
		},
		Proxy: ProxyConfig{
			Subpath: strings.Trim(env("APP_PROXY_SUBPATH", defaultSubpath), " "),
			Verify:  !strings.EqualFold(strings.TrimSpace(os.Getenv("APP_PROXY_VERIFY")), "false"),
			Secret:  os.Getenv("SHOPIFY_APP_SECRET"),
		},
		Upload: UploadConfig{
			CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
			UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
			Folder:       os.Getenv("CLOUDINARY_FOLDER"),
		},
		Log: LogConfig{
			Level:  env("LOG_LEVEL", "info"),
			Format: env("LOG_FORMAT", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(env("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Shopify.Shop == "" {
		return ErrMissingShop
	}
	if c.Shopify.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if strings.Contains(c.Proxy.Subpath, "/") {
		return ErrInvalidSubpath
	}
	return nil
}

// BasePath is the path prefix the gateway forwards proxied requests under.
func (c *Config) BasePath() string {
	return "/apps/" + c.Proxy.Subpath
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
