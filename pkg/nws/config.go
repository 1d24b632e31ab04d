package nws

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/uw-it-aca/restclients-nws/pkg/transport"
)

// Config contains configuration for the notification service client.
//
// Example configuration (HCL, see internal/config):
//
//	nws {
//	  base_url   = "https://api.concert.uw.edu"
//	  auth_token = "..."
//	  timeout    = "30s"
//	  tls_verify = true
//	}
type Config struct {
	// BaseURL is the scheme and host of the service, without the
	// /notification/v1 prefix.
	// Example: "https://api.concert.uw.edu"
	BaseURL string `json:"baseUrl"`

	// AuthToken is a static bearer token. Mutually exclusive with OAuth.
	AuthToken string `json:"-"` // Don't marshal auth token to JSON

	// OAuth enables the client-credentials token exchange.
	OAuth *transport.OAuthConfig `json:"-"`

	// ActAs is the initial act-as identity sent with write requests.
	ActAs string `json:"actAs,omitempty"`

	// FixturesDir, when set, serves every request from canned response
	// files under this directory instead of the network.
	FixturesDir string `json:"fixturesDir,omitempty"`

	// TLSVerify controls TLS certificate verification
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for each request
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives request logs. Default: null logger.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// clone returns a shallow copy of c with its own TLSVerify value.
func (c *Config) clone() *Config {
	out := *c
	if c.TLSVerify != nil {
		tlsVerify := *c.TLSVerify
		out.TLSVerify = &tlsVerify
	}
	return &out
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.BaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("base_url is required"))
	} else if parsedURL, err := url.Parse(c.BaseURL); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid base_url: %w", err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		result = multierror.Append(result,
			fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme))
	}

	if c.AuthToken != "" && c.OAuth != nil {
		result = multierror.Append(result, fmt.Errorf("auth_token and oauth are mutually exclusive"))
	}

	if c.OAuth != nil {
		if err := c.OAuth.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be positive, got: %v", c.Timeout))
	}

	return result.ErrorOrNil()
}

// NewHTTPClient creates the HTTP client described by the configuration:
// pooled (or fixture) transport, wrapped with bearer authentication when a
// token or OAuth credentials are configured.
func (c *Config) NewHTTPClient() *http.Client {
	tlsVerify := c.TLSVerify == nil || *c.TLSVerify

	var rt http.RoundTripper
	if c.FixturesDir != "" {
		rt = transport.NewFixtureTransport(c.FixturesDir, ServiceName)
	} else {
		rt = transport.NewPooledTransport(tlsVerify)
	}

	switch {
	case c.AuthToken != "":
		rt = transport.WithBearer(rt, transport.StaticToken(c.AuthToken))
	case c.OAuth != nil:
		rt = transport.WithBearer(rt,
			transport.ClientCredentials(c.OAuth, transport.NewPooledTransport(tlsVerify)))
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: rt,
	}
}
