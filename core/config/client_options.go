// ABOUTME: Client configuration for service-level control of the fdc client
// ABOUTME: Provides configuration options independent of transport structures

package config

import "time"

// DefaultBaseURL is the production FoodData Central API root
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1/"

// ClientConfig controls base URL and memoization behavior
type ClientConfig struct {
	// BaseURL is the API root all endpoint paths are resolved against
	BaseURL string

	// CacheTTL is how long memoized results are kept; 0 keeps them indefinitely
	CacheTTL time.Duration
}

// DefaultClientConfig returns the default configuration
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:  DefaultBaseURL,
		CacheTTL: 0,
	}
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*ClientConfig)

// WithBaseURL overrides the API root, e.g. for test servers
func WithBaseURL(baseURL string) ClientOption {
	return func(c *ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithCacheTTL sets the expiration for memoized results
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.CacheTTL = ttl
	}
}

// NewClientConfig creates a new client configuration with the given options
func NewClientConfig(opts ...ClientOption) ClientConfig {
	config := DefaultClientConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
