package client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/elastic/elastic-transport-go/v8/elastictransport"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// ErrDecode marks a response that arrived intact but could not be decoded.
var ErrDecode = errors.New("decode response")

// ESClient defines the interface for reading index data from an Elasticsearch cluster.
type ESClient interface {
	CatIndices(ctx context.Context, pattern string) ([]IndexInfo, error)
	BaseURL() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL            string
	Username           string
	Password           string
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
	Logger             *zap.Logger
}

// DefaultClient implements ESClient on top of the esapi request types and a
// single-node elastictransport client.
type DefaultClient struct {
	transport *elastictransport.Client
	config    ClientConfig
	log       *zap.Logger
}

// NewDefaultClient constructs a DefaultClient from the given config.
// It configures TLS skip-verify and request timeout from the config and
// disables transport retries.
// Returns an error if BaseURL is empty or unparseable.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid BaseURL %q: %w", cfg.BaseURL, err)
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpTransport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	tp, err := elastictransport.New(elastictransport.Config{
		URLs:         []*url.URL{u},
		Username:     cfg.Username,
		Password:     cfg.Password,
		Transport:    httpTransport,
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	return &DefaultClient{
		transport: tp,
		config:    cfg,
		log:       cfg.Logger,
	}, nil
}

// BaseURL returns the configured base URL of the Elasticsearch cluster.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// readBody drains and closes the response body.
// Returns the body bytes or an error on non-2xx status.
func readBody(res *esapi.Response) ([]byte, error) {
	defer res.Body.Close()

	const maxResponseBytes = 32 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", res.StatusCode, truncate(body, 200))
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
