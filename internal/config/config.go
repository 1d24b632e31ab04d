package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/uw-it-aca/restclients-nws/pkg/nws"
	"github.com/uw-it-aca/restclients-nws/pkg/transport"
)

// Config is the CLI configuration file.
//
//	log_level = "info"
//
//	nws {
//	  base_url = "https://api.concert.uw.edu"
//	  timeout  = "15s"
//
//	  oauth {
//	    client_id     = "..."
//	    client_secret = "..."
//	    token_url     = "https://login.example.edu/oauth2/token"
//	  }
//	}
type Config struct {
	// LogLevel is an hclog level name. Default: "info".
	LogLevel string `hcl:"log_level,optional"`

	NWS *NWS `hcl:"nws,block"`
}

// NWS configures the notification service connection.
type NWS struct {
	BaseURL     string `hcl:"base_url,optional"`
	AuthToken   string `hcl:"auth_token,optional"`
	ActAs       string `hcl:"act_as,optional"`
	FixturesDir string `hcl:"fixtures_dir,optional"`
	TLSVerify   *bool  `hcl:"tls_verify,optional"`

	// Timeout is a Go duration string such as "30s".
	Timeout string `hcl:"timeout,optional"`

	OAuth *OAuth `hcl:"oauth,block"`
}

// OAuth configures the client credentials token exchange.
type OAuth struct {
	ClientID     string   `hcl:"client_id,optional"`
	ClientSecret string   `hcl:"client_secret,optional"`
	TokenURL     string   `hcl:"token_url,optional"`
	Scopes       []string `hcl:"scopes,optional"`
}

// Environment variables that override file settings.
const (
	EnvLogLevel          = "NWS_LOG_LEVEL"
	EnvBaseURL           = "NWS_BASE_URL"
	EnvAuthToken         = "NWS_AUTH_TOKEN"
	EnvActAs             = "NWS_ACT_AS"
	EnvFixturesDir       = "NWS_FIXTURES_DIR"
	EnvTimeout           = "NWS_TIMEOUT"
	EnvTLSVerify         = "NWS_TLS_VERIFY"
	EnvOAuthClientID     = "NWS_OAUTH_CLIENT_ID"
	EnvOAuthClientSecret = "NWS_OAUTH_CLIENT_SECRET"
	EnvOAuthTokenURL     = "NWS_OAUTH_TOKEN_URL"
)

// NewConfig loads the configuration file at path, applies environment
// overrides and validates the result. An empty path starts from an empty
// configuration so the environment alone can configure the client.
func NewConfig(path string) (*Config, error) {
	return Load(path, os.LookupEnv)
}

// Load is NewConfig with overrides read through lookupEnv.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
		}
	}
	return finish(cfg, lookupEnv)
}

// Decode parses configuration source. filename only selects the syntax
// (".hcl" or ".json") and labels diagnostics.
func Decode(filename string, src []byte, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.Decode(filename, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return finish(cfg, lookupEnv)
}

func finish(cfg *Config, lookupEnv func(string) (string, bool)) (*Config, error) {
	if cfg.NWS == nil {
		cfg.NWS = &NWS{}
	}
	if err := cfg.applyEnv(lookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fixtureBaseURL stands in for the service host when responses come from
// fixture files.
const fixtureBaseURL = "http://localhost"

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.NWS.FixturesDir != "" && c.NWS.BaseURL == "" {
		c.NWS.BaseURL = fixtureBaseURL
	}
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	n := c.NWS
	set := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	set(EnvLogLevel, &c.LogLevel)
	set(EnvBaseURL, &n.BaseURL)
	set(EnvAuthToken, &n.AuthToken)
	set(EnvActAs, &n.ActAs)
	set(EnvFixturesDir, &n.FixturesDir)
	set(EnvTimeout, &n.Timeout)

	if v, ok := lookupEnv(EnvTLSVerify); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTLSVerify, err)
		}
		n.TLSVerify = &b
	}

	var oauth OAuth
	if n.OAuth != nil {
		oauth = *n.OAuth
	}
	set(EnvOAuthClientID, &oauth.ClientID)
	set(EnvOAuthClientSecret, &oauth.ClientSecret)
	set(EnvOAuthTokenURL, &oauth.TokenURL)
	if n.OAuth != nil || oauth.ClientID != "" || oauth.ClientSecret != "" || oauth.TokenURL != "" {
		n.OAuth = &oauth
	}

	return nil
}

// Validate checks the file level settings. Connection settings are checked
// again by nws.Config.Validate when the client is built.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validation.Validate(c.LogLevel,
		validation.In("trace", "debug", "info", "warn", "error", "off"),
	); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
	}

	n := c.NWS
	if err := validation.ValidateStruct(n,
		validation.Field(&n.BaseURL, validation.Required, is.URL),
		validation.Field(&n.Timeout, validation.By(isDuration)),
	); err != nil {
		result = multierror.Append(result, err)
	}

	if n.OAuth != nil {
		o := n.OAuth
		if err := validation.ValidateStruct(o,
			validation.Field(&o.ClientID, validation.Required),
			validation.Field(&o.ClientSecret, validation.Required),
			validation.Field(&o.TokenURL, validation.Required, is.URL),
		); err != nil {
			result = multierror.Append(result, fmt.Errorf("oauth: %w", err))
		}
	}

	return result.ErrorOrNil()
}

func isDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration such as \"30s\"")
	}
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// ClientConfig converts the file settings into a client configuration.
func (c *Config) ClientConfig(logger hclog.Logger) (*nws.Config, error) {
	n := c.NWS

	cfg := nws.DefaultConfig()
	cfg.BaseURL = n.BaseURL
	cfg.AuthToken = n.AuthToken
	cfg.ActAs = n.ActAs
	cfg.FixturesDir = n.FixturesDir
	cfg.Logger = logger
	if n.TLSVerify != nil {
		cfg.TLSVerify = n.TLSVerify
	}
	if n.Timeout != "" {
		d, err := time.ParseDuration(n.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if n.OAuth != nil {
		cfg.OAuth = &transport.OAuthConfig{
			ClientID:     n.OAuth.ClientID,
			ClientSecret: n.OAuth.ClientSecret,
			TokenURL:     n.OAuth.TokenURL,
			Scopes:       n.OAuth.Scopes,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
