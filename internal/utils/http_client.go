package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// all request builders are available directly.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://forum.example.com"))
//	resp, err := client.R().Get("/users/by-external/42.json")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an HTTPClient at construction.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL prefixes every relative request path.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification when skip
// is true. Development only.
func WithInsecureSkipVerify(skip bool) HTTPClientOption {
	return func(c *resty.Client) {
		if skip {
			c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
		}
	}
}

// WithHeaders sets headers sent with every request.
func WithHeaders(headers map[string]string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeaders(headers)
	}
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool and applies opts in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
