package shopify

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds the Admin API connection settings.
type Config struct {
	// Shop is the shop domain, e.g. example.myshopify.com
	Shop string
	// AccessToken is the Admin API access token sent on every call
	AccessToken string
	// APIVersion is the dated Admin API version, e.g. 2024-10
	APIVersion string
	// BaseURL overrides the https://<shop> origin (tests, local mocks)
	BaseURL string
	// TimeoutSeconds bounds every upstream call
	TimeoutSeconds int
}

const (
	DefaultAPIVersion     = "2024-10"
	DefaultTimeoutSeconds = 15
)

var (
	ErrConfigMissingShop        = errors.New("shopify: shop domain is required")
	ErrConfigMissingAccessToken = errors.New("shopify: access token is required")
)

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.Shop == "" && c.BaseURL == "" {
		return ErrConfigMissingShop
	}
	if c.AccessToken == "" {
		return ErrConfigMissingAccessToken
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}

// adminURL returns the absolute Admin API URL for path.
func (c *Config) adminURL(path string) string {
	origin := strings.TrimRight(c.BaseURL, "/")
	if origin == "" {
		origin = "https://" + c.Shop
	}
	return fmt.Sprintf("%s/admin/api/%s%s", origin, c.APIVersion, path)
}
