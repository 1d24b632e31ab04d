package transport

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// OAuthConfig holds the client-credentials settings used to obtain bearer
// tokens for the notification service.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// Validate checks that every credential field is present.
func (c *OAuthConfig) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("oauth client_id is required")
	case c.ClientSecret == "":
		return fmt.Errorf("oauth client_secret is required")
	case c.TokenURL == "":
		return fmt.Errorf("oauth token_url is required")
	}
	return nil
}

// StaticToken returns a token source that always yields token.
func StaticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

// ClientCredentials returns a token source that exchanges the client secret
// for short-lived tokens. Tokens are cached and refreshed by x/oauth2. The
// token request itself uses base as its transport.
func ClientCredentials(cfg *OAuthConfig, base http.RoundTripper) oauth2.TokenSource {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: base})
	return cc.TokenSource(ctx)
}

// WithBearer wraps base so every request carries an
// "Authorization: Bearer <token>" header from src.
func WithBearer(base http.RoundTripper, src oauth2.TokenSource) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &oauth2.Transport{
		Source: oauth2.ReuseTokenSource(nil, src),
		Base:   base,
	}
}
