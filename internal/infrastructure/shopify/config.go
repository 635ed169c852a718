package shopify

import (
	"errors"
	"fmt"
)

// Config holds configuration for the Shopify Admin REST API
type Config struct {
	// ShopDomain is the myshopify domain, e.g. "acme.myshopify.com"
	ShopDomain string
	// AccessToken is the Admin API access token
	AccessToken string
	// APIVersion is the Admin API version, e.g. "2024-10"
	APIVersion string
	// BaseURL overrides the derived https://{ShopDomain} base.
	// Used by tests; leave empty in production.
	BaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// DefaultAPIVersion is used when no API version is configured
const DefaultAPIVersion = "2024-10"

// Errors for Shopify configuration
var (
	ErrConfigMissingShopDomain  = errors.New("shopify: shop domain is required")
	ErrConfigMissingAccessToken = errors.New("shopify: access token is required")
)

// NewConfig creates a new Shopify configuration with defaults
func NewConfig(shopDomain, accessToken string) *Config {
	return &Config{
		ShopDomain:     shopDomain,
		AccessToken:    accessToken,
		APIVersion:     DefaultAPIVersion,
		TimeoutSeconds: 15,
	}
}

// Validate validates the Shopify configuration
func (c *Config) Validate() error {
	if c.ShopDomain == "" && c.BaseURL == "" {
		return ErrConfigMissingShopDomain
	}
	if c.AccessToken == "" {
		return ErrConfigMissingAccessToken
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	return nil
}

// apiBaseURL returns the base URL for Admin API requests
func (c *Config) apiBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s", c.ShopDomain)
}
