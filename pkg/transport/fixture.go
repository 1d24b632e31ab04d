package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/spf13/afero"
)

// FixtureTransport answers requests from canned response files instead of
// the network. A request for
//
//	GET /notification/v1/endpoint?subscriber_id=javerage
//
// is served from
//
//	<Root>/<Service>/file/notification/v1/endpoint?subscriber_id=javerage
//
// Requests other than GET look for the same name with a ".<METHOD>" suffix
// (for example "endpoint.POST"). A sibling file named "<file>.http-headers"
// may hold {"status": 201, "headers": {"X-Name": "value"}} to override the
// default 200 status. Missing files produce a 404 response.
type FixtureTransport struct {
	Fs      afero.Fs
	Root    string
	Service string
}

// NewFixtureTransport returns a FixtureTransport reading from the local
// directory root.
func NewFixtureTransport(root, service string) *FixtureTransport {
	return &FixtureTransport{
		Fs:      afero.NewOsFs(),
		Root:    root,
		Service: service,
	}
}

type fixtureHeaders struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
}

// FixturePath returns the file that answers a request with the given method
// and request URI (path plus optional query).
func (t *FixtureTransport) FixturePath(method, requestURI string) string {
	name := path.Join(t.Root, t.Service, "file", requestURI)
	if method != http.MethodGet {
		name += "." + method
	}
	return name
}

// RoundTrip implements http.RoundTripper.
func (t *FixtureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		// fixtures ignore the request body; drain and close it
		_, _ = io.Copy(io.Discard, req.Body)
		req.Body.Close()
	}

	name := t.FixturePath(req.Method, req.URL.RequestURI())

	body, err := afero.ReadFile(t.Fs, name)
	if err != nil {
		if os.IsNotExist(err) {
			return newResponse(req, http.StatusNotFound, nil, []byte("fixture not found: "+req.URL.RequestURI())), nil
		}
		return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
	}

	status := http.StatusOK
	var headers map[string]string
	if raw, err := afero.ReadFile(t.Fs, name+".http-headers"); err == nil {
		var fh fixtureHeaders
		if err := json.Unmarshal(raw, &fh); err != nil {
			return nil, fmt.Errorf("invalid fixture headers for %s: %w", name, err)
		}
		if fh.Status != 0 {
			status = fh.Status
		}
		headers = fh.Headers
	}

	return newResponse(req, status, headers, body), nil
}

func newResponse(req *http.Request, status int, headers map[string]string, body []byte) *http.Response {
	header := make(http.Header)
	for k, v := range headers {
		header.Set(k, v)
	}
	if header.Get("Content-Type") == "" && len(body) > 0 && status < 300 {
		header.Set("Content-Type", "application/json")
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
