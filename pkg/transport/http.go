// Package transport provides the HTTP plumbing the notification client runs
// on: a pooled transport, bearer token sources and a fixture-file round
// tripper for tests and offline use.
package transport

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewPooledTransport returns an http.Transport with connection pooling.
// Certificate verification is skipped only when tlsVerify is false.
func NewPooledTransport(tlsVerify bool) *http.Transport {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if !tlsVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return transport
}
