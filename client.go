package helius

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gabapcia/helius-go/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/helius-go/internal/pkg/transport/rest"
)

var (
	// ErrAPIKeyRequired indicates the client was constructed without an API key.
	ErrAPIKeyRequired = errors.New("api key is required")

	// ErrUnsupportedCluster indicates the configured cluster is not a known
	// Helius cluster.
	ErrUnsupportedCluster = errors.New("unsupported cluster")
)

// Client is a typed client for the Helius REST and JSON-RPC APIs. All fields
// are set at construction time and never mutated afterwards, so a single
// Client is safe for concurrent use.
type Client struct {
	cluster          Cluster
	maxMintlistPages int

	rest rest.Client
	rpc  jsonrpc.Client
}

// config holds the configuration parameters for the Client.
type config struct {
	cluster          Cluster
	restEndpoint     string
	rpcEndpoint      string
	timeout          time.Duration
	retryWaitMin     time.Duration
	retryWaitMax     time.Duration
	retryMax         int
	maxMintlistPages int
}

// Option defines a functional option type used to customize the client configuration.
type Option func(*config)

// WithCluster selects the Solana cluster the client targets. Defaults to
// ClusterMainnetBeta.
func WithCluster(cluster Cluster) Option {
	return func(c *config) {
		c.cluster = cluster
	}
}

// WithRESTEndpoint overrides the REST API base URL derived from the cluster.
// Intended for tests and private deployments.
func WithRESTEndpoint(endpoint string) Option {
	return func(c *config) {
		c.restEndpoint = endpoint
	}
}

// WithRPCEndpoint overrides the JSON-RPC base URL derived from the cluster.
// Intended for tests and private deployments.
func WithRPCEndpoint(endpoint string) Option {
	return func(c *config) {
		c.rpcEndpoint = endpoint
	}
}

// WithTimeout sets the timeout of each HTTP request issued by the client.
// Defaults to 5s.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithRetryWaitMin sets the minimum wait between retries of a failed
// request. Defaults to 1s.
func WithRetryWaitMin(wait time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = wait
	}
}

// WithRetryWaitMax sets the maximum wait between retries of a failed
// request. Defaults to 5s.
func WithRetryWaitMax(wait time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = wait
	}
}

// WithRetryMax sets how many times a failed request is retried before
// giving up. Defaults to 2.
func WithRetryMax(max int) Option {
	return func(c *config) {
		c.retryMax = max
	}
}

// WithMaxMintlistPages puts a ceiling on the number of pages a single
// mintlist drain may fetch. The drain fails with ErrTooManyMintlistPages
// once the ceiling is hit. Defaults to 0, which disables the ceiling.
func WithMaxMintlistPages(pages int) Option {
	return func(c *config) {
		c.maxMintlistPages = pages
	}
}

// New creates a Client authenticated with the given API key.
//
// Parameters:
//   - apiKey: project API key, sent with every request.
//   - opts: optional functional options to customize cluster, endpoints,
//     timeouts and retries.
//
// Returns:
//   - *Client: a ready-to-use client targeting the configured cluster.
//   - error: ErrAPIKeyRequired when apiKey is empty, or
//     ErrUnsupportedCluster when an unknown cluster is configured.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	cfg := config{
		cluster:      ClusterMainnetBeta,
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.cluster.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCluster, cfg.cluster)
	}

	if cfg.restEndpoint == "" {
		cfg.restEndpoint = cfg.cluster.restBaseURL()
	}
	if cfg.rpcEndpoint == "" {
		cfg.rpcEndpoint = cfg.cluster.rpcBaseURL()
	}

	restClient := rest.NewClient(cfg.restEndpoint,
		rest.WithDefaultQuery("api-key", apiKey),
		rest.WithTimeout(cfg.timeout),
		rest.WithRetryWaitMin(cfg.retryWaitMin),
		rest.WithRetryWaitMax(cfg.retryWaitMax),
		rest.WithRetryMax(cfg.retryMax),
	)

	rpcEndpoint := fmt.Sprintf("%s/?api-key=%s", strings.TrimSuffix(cfg.rpcEndpoint, "/"), url.QueryEscape(apiKey))
	rpcClient := jsonrpc.NewClient(rpcEndpoint,
		jsonrpc.WithTimeout(cfg.timeout),
		jsonrpc.WithRetryWaitMin(cfg.retryWaitMin),
		jsonrpc.WithRetryWaitMax(cfg.retryWaitMax),
		jsonrpc.WithRetryMax(cfg.retryMax),
	)

	return &Client{
		cluster:          cfg.cluster,
		maxMintlistPages: cfg.maxMintlistPages,
		rest:             restClient,
		rpc:              rpcClient,
	}, nil
}
