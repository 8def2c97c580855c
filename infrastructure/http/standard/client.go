// ABOUTME: Standard HTTP client implementation with timeout and optional throttling
// ABOUTME: Performs single-shot GET requests; status classification happens in the core

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"fooddata-api-client/core/interfaces"
)

const userAgent = "FoodDataClient/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the client
type Option func(*StandardHTTPClient)

// WithRateLimit throttles outgoing requests to r per second with the given
// burst. FoodData Central enforces hourly API key quotas; throttling client
// side keeps long batch runs inside them.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *StandardHTTPClient) {
		c.limiter = rate.NewLimiter(r, burst)
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs a single HTTP GET request. There is no retry: the caller
// classifies every status code, including 5xx, exactly once.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
