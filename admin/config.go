package admin

import (
	"fmt"
	"net/http"
	"time"
)

// Default configuration values.
const (
	DefaultAPIVersion       = "2025-01"
	DefaultTimeout          = 30 * time.Second
	DefaultUserAgent        = "MCPShopifyServer/0.1.0"
	DefaultMaxResponseBytes = 32 << 20
)

// Wire constants for the Shopify Admin API.
const (
	AccessTokenHeader = "X-Shopify-Access-Token"
	endpointFormat    = "https://%s.myshopify.com/admin/api/%s/graphql.json"
)

// Doer sends HTTP requests. *http.Client satisfies it.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Do must honor the request context's cancellation and deadline.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
// A Config is read once by New and never mutated afterwards.
type Config struct {
	// AccessToken is the Admin API access token sent in X-Shopify-Access-Token.
	// Required; calls short-circuit with a configuration error when empty.
	AccessToken string

	// StoreName is the shop subdomain, as in <store>.myshopify.com.
	// Required unless Endpoint is set.
	StoreName string

	// APIVersion is the Admin API version path segment.
	// Default: "2025-01"
	APIVersion string

	// Endpoint overrides the URL derived from StoreName and APIVersion.
	// Optional; intended for proxies and tests.
	Endpoint string

	// Timeout bounds each call, from dial to the last body byte.
	// Default: 30s
	Timeout time.Duration

	// UserAgent identifies this client to Shopify.
	// Default: "MCPShopifyServer/0.1.0"
	UserAgent string

	// MaxResponseBytes caps the response body size.
	// Default: 32 MiB
	MaxResponseBytes int64

	// HTTPClient sends requests.
	// Default: a dedicated *http.Client with no client-level timeout.
	HTTPClient Doer

	// Logger receives diagnostics. Optional.
	Logger Logger
}

// applyDefaults sets default values for unset optional fields.
func (c *Config) applyDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxResponseBytes <= 0 {
		c.MaxResponseBytes = DefaultMaxResponseBytes
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			// Redirects are not followed; a 3xx surfaces as a status error.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	if c.Logger == nil {
		c.Logger = NopLogger{}
	}
}

// Validate reports the first missing required setting, in the order the
// Client checks them: access token, then store.
func (c Config) Validate() error {
	if c.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if c.StoreName == "" && c.Endpoint == "" {
		return ErrMissingStoreName
	}
	return nil
}

// URL returns the GraphQL endpoint calls are posted to.
func (c Config) URL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	version := c.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	return fmt.Sprintf(endpointFormat, c.StoreName, version)
}
