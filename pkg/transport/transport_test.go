package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureClient(t *testing.T, files map[string]string) *http.Client {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return &http.Client{Transport: &FixtureTransport{Fs: fs, Root: "/resources", Service: "nws"}}
}

func TestFixtureTransport_Get(t *testing.T) {
	client := newFixtureClient(t, map[string]string{
		"/resources/nws/file/notification/v1/endpoint/780f2a49-2118-4969-9bef-bbd38c26970a": `{"Endpoint": {}}`,
	})

	resp, err := client.Get("https://nws.example.edu/notification/v1/endpoint/780f2a49-2118-4969-9bef-bbd38c26970a")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"Endpoint": {}}`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestFixtureTransport_QueryInFileName(t *testing.T) {
	client := newFixtureClient(t, map[string]string{
		"/resources/nws/file/notification/v1/endpoint?protocol=sms&subscriber_id=javerage": `{"Endpoints": []}`,
	})

	resp, err := client.Get("https://nws.example.edu/notification/v1/endpoint?protocol=sms&subscriber_id=javerage")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFixtureTransport_MissingFileIs404(t *testing.T) {
	client := newFixtureClient(t, nil)

	resp, err := client.Get("https://nws.example.edu/notification/v1/channel/00000000-d6f6-4afb-8165-8dbe6232119f")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "fixture not found")
}

func TestFixtureTransport_WriteMethodsAndHeaders(t *testing.T) {
	client := newFixtureClient(t, map[string]string{
		"/resources/nws/file/notification/v1/endpoint.POST":              "",
		"/resources/nws/file/notification/v1/endpoint.POST.http-headers": `{"status": 201, "headers": {"Location": "/notification/v1/endpoint/1"}}`,
	})

	resp, err := client.Post("https://nws.example.edu/notification/v1/endpoint", "application/json", strings.NewReader(`{"Endpoint": {}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/notification/v1/endpoint/1", resp.Header.Get("Location"))

	req, err := http.NewRequest(http.MethodDelete, "https://nws.example.edu/notification/v1/endpoint/1", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type trackingBody struct {
	*strings.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestFixtureTransport_ConsumesRequestBody(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/resources/nws/file/notification/v1/dispatch.POST", nil, 0o644))
	rt := &FixtureTransport{Fs: fs, Root: "/resources", Service: "nws"}

	body := &trackingBody{Reader: strings.NewReader(`{"Dispatch": {}}`)}
	req := httptest.NewRequest(http.MethodPost, "https://nws.example.edu/notification/v1/dispatch", nil)
	req.Body = body

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.closed)
	assert.Zero(t, body.Len())
}

func TestFixtureTransport_FixturePath(t *testing.T) {
	ft := NewFixtureTransport("/srv/resources", "nws")
	assert.Equal(t, "/srv/resources/nws/file/notification/v1/person/javerage",
		ft.FixturePath(http.MethodGet, "/notification/v1/person/javerage"))
	assert.Equal(t, "/srv/resources/nws/file/notification/v1/person/javerage.PUT",
		ft.FixturePath(http.MethodPut, "/notification/v1/person/javerage"))
}

func TestWithBearer_StaticToken(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: WithBearer(http.DefaultTransport, StaticToken("test1"))}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer test1", got)
}

func TestWithBearer_ClientCredentials(t *testing.T) {
	tokenRequests := 0
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "minted", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer tokenServer.Close()

	var got []string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	cfg := &OAuthConfig{ClientID: "id", ClientSecret: "secret", TokenURL: tokenServer.URL}
	require.NoError(t, cfg.Validate())

	client := &http.Client{Transport: WithBearer(http.DefaultTransport, ClientCredentials(cfg, http.DefaultTransport))}
	for i := 0; i < 2; i++ {
		resp, err := client.Get(api.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, []string{"Bearer minted", "Bearer minted"}, got)
	assert.Equal(t, 1, tokenRequests, "token should be cached between requests")
}

func TestOAuthConfig_Validate(t *testing.T) {
	assert.ErrorContains(t, (&OAuthConfig{}).Validate(), "client_id")
	assert.ErrorContains(t, (&OAuthConfig{ClientID: "a"}).Validate(), "client_secret")
	assert.ErrorContains(t, (&OAuthConfig{ClientID: "a", ClientSecret: "b"}).Validate(), "token_url")
}

func TestNewPooledTransport(t *testing.T) {
	assert.Nil(t, NewPooledTransport(true).TLSClientConfig)
	insecure := NewPooledTransport(false)
	require.NotNil(t, insecure.TLSClientConfig)
	assert.True(t, insecure.TLSClientConfig.InsecureSkipVerify)
}
