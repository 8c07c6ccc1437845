// Package rest provides a JSON-over-HTTP client with retry logic for
// path-addressed REST APIs. It wraps the retryablehttp.Client from HashiCorp,
// appends a fixed set of default query parameters to every request (such as
// an API key), and maps response statuses onto sentinel errors.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrNotFound indicates the requested resource does not exist on the remote service.
	ErrNotFound = errors.New("resource not found")

	// ErrUnexpectedStatus indicates the remote service answered with a non-success HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Client defines the interface for a JSON REST client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Get issues a GET request for the given path and decodes the JSON response into out.
	// A nil out discards the response body.
	Get(ctx context.Context, path string, out any) error

	// Post issues a POST request with the given body encoded as JSON and decodes the
	// JSON response into out. A nil body sends no payload; a nil out discards the response.
	Post(ctx context.Context, path string, body, out any) error

	// Put issues a PUT request with the given body encoded as JSON and decodes the
	// JSON response into out. A nil body sends no payload; a nil out discards the response.
	Put(ctx context.Context, path string, body, out any) error

	// Delete issues a DELETE request for the given path, discarding any response body.
	Delete(ctx context.Context, path string) error
}

// client is a reusable JSON REST client over HTTP.
// It handles encoding request bodies, decoding responses, status mapping, and retry logic.
type client struct {
	baseURL      string                // Root URL of the remote service, without a trailing slash
	defaultQuery url.Values            // Query parameters appended to every request
	httpClient   *retryablehttp.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// buildURL joins the base URL with the request path and appends the default query parameters.
func (c *client) buildURL(path string) string {
	u := c.baseURL + path
	if len(c.defaultQuery) > 0 {
		u += "?" + c.defaultQuery.Encode()
	}
	return u
}

// do performs a single HTTP request. The body, when non-nil, is encoded as JSON.
// A 404 status maps to ErrNotFound; any other non-2xx status maps to
// ErrUnexpectedStatus wrapped with the status code and the (trimmed) response body.
// When out is non-nil, the response body is decoded into it as JSON.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices:
		data, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%w: [%d] - %s", ErrUnexpectedStatus, res.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// Get issues a GET request for the given path and decodes the JSON response into out.
func (c *client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with the given JSON body and decodes the response into out.
func (c *client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with the given JSON body and decodes the response into out.
func (c *client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request for the given path.
func (c *client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// config holds optional configuration parameters for the REST client.
type config struct {
	timeout      time.Duration // Maximum time to wait for a HTTP request
	retryWaitMin time.Duration // Minimum delay between retries
	retryWaitMax time.Duration // Maximum delay between retries
	retryMax     int           // Maximum number of retry attempts
	defaultQuery url.Values    // Query parameters appended to every request
}

// Option defines a functional option type used to customize the client configuration.
type Option func(*config)

// NewClient creates a new REST client rooted at the specified base URL.
// Optional configuration parameters can be supplied using functional options such as
// WithTimeout or WithDefaultQuery. It includes retry support via the retryablehttp package.
func NewClient(baseURL string, opts ...Option) *client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		defaultQuery: url.Values{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil
	httpClient.HTTPClient.Timeout = cfg.timeout
	httpClient.RetryWaitMin = cfg.retryWaitMin
	httpClient.RetryWaitMax = cfg.retryWaitMax
	httpClient.RetryMax = cfg.retryMax

	return &client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		defaultQuery: cfg.defaultQuery,
		httpClient:   httpClient,
	}
}

// WithTimeout configures the maximum duration for a single HTTP request.
//
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin configures the minimum wait duration between retry attempts.
//
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax configures the maximum wait duration between retry attempts.
//
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax configures the maximum number of retry attempts for failed requests.
//
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithDefaultQuery registers a query parameter appended to every request URL.
// Calling it again with the same key overwrites the previous value.
func WithDefaultQuery(key, value string) Option {
	return func(c *config) {
		c.defaultQuery.Set(key, value)
	}
}
