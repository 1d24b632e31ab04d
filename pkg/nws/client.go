package nws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// ServiceName names the service in fixture paths.
	ServiceName = "nws"

	// APIPrefix is prepended to every request path.
	APIPrefix = "/notification/v1"

	// ActAsHeader carries the identity a write is performed on behalf of.
	ActAsHeader = "X_UW_ACT_AS"
)

// Client talks to the notification web service. Each method issues a single
// request and returns once the response has been mapped; there are no
// retries and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger

	// actAs is read while building write requests. It is not guarded;
	// do not change it while a request is in flight.
	actAs string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from the configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger replaces the configured logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new notification service client. cfg is not modified.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("invalid NWS client config: config is required")
	}
	cfg = cfg.clone()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid NWS client config: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  cfg.Logger,
		actAs:   cfg.ActAs,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = cfg.NewHTTPClient()
	}
	c.logger = c.logger.Named("nws-client")

	return c, nil
}

// ActAs returns the identity sent with write requests, or "".
func (c *Client) ActAs() string {
	return c.actAs
}

// SetActAs sets the identity sent with write requests. An empty string stops
// sending the header.
func (c *Client) SetActAs(user string) {
	c.actAs = user
}

func (c *Client) readHeaders() http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	return h
}

func (c *Client) writeHeaders() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	if c.actAs != "" {
		// Set would canonicalise the underscore name
		h[ActAsHeader] = []string{c.actAs}
	}
	return h
}

// requestURI joins the API prefix, path and query. Query keys are sorted by
// url.Values.Encode.
func requestURI(path string, query url.Values) string {
	uri := APIPrefix + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	return uri
}

// doRequest executes one HTTP request and checks the response status
// against expected. uri is relative to the base URL.
func (c *Client) doRequest(ctx context.Context, method, uri string, body any, expected int) ([]byte, error) {
	endpoint := c.baseURL + uri

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if method == http.MethodGet {
		req.Header = c.readHeaders()
	} else {
		req.Header = c.writeHeaders()
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request completed",
		"method", method,
		"url", uri,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode != expected {
		c.logger.Warn("unexpected response status",
			"method", method,
			"url", uri,
			"status", resp.StatusCode,
			"expected", expected,
		)
		return nil, &DataFailureError{URL: uri, Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func (c *Client) get(ctx context.Context, uri string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, uri, nil, http.StatusOK)
}
