package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

const sampleConfig = `
log_level = "debug"

nws {
  base_url     = "https://api.concert.uw.edu"
  act_as       = "javerage"
  timeout      = "15s"
  tls_verify   = false
}
`

func TestDecode(t *testing.T) {
	cfg, err := Decode("config.hcl", []byte(sampleConfig), env(nil))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://api.concert.uw.edu", cfg.NWS.BaseURL)
	assert.Equal(t, "javerage", cfg.NWS.ActAs)
	require.NotNil(t, cfg.NWS.TLSVerify)
	assert.False(t, *cfg.NWS.TLSVerify)
	assert.Nil(t, cfg.NWS.OAuth)

	client, err := cfg.ClientConfig(hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, client.Timeout)
	assert.Equal(t, "javerage", client.ActAs)
	assert.False(t, *client.TLSVerify)
}

func TestDecode_EnvOverrides(t *testing.T) {
	cfg, err := Decode("config.hcl", []byte(sampleConfig), env(map[string]string{
		EnvBaseURL:           "https://nws.example.edu",
		EnvTimeout:           "1m",
		EnvOAuthClientID:     "client",
		EnvOAuthClientSecret: "secret",
		EnvOAuthTokenURL:     "https://login.example.edu/token",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://nws.example.edu", cfg.NWS.BaseURL)
	require.NotNil(t, cfg.NWS.OAuth)
	assert.Equal(t, "client", cfg.NWS.OAuth.ClientID)

	client, err := cfg.ClientConfig(hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, client.Timeout)
	require.NotNil(t, client.OAuth)
	assert.Equal(t, "https://login.example.edu/token", client.OAuth.TokenURL)
}

func TestDecode_EnvOnly(t *testing.T) {
	cfg, err := Decode("config.hcl", nil, env(map[string]string{
		EnvBaseURL:   "https://nws.example.edu",
		EnvAuthToken: "token",
	}))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "token", cfg.NWS.AuthToken)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing base url",
			src:     `nws {}`,
			wantErr: "BaseURL",
		},
		{
			name:    "bad timeout",
			src:     "nws {\n  base_url = \"https://nws.example.edu\"\n  timeout  = \"soon\"\n}\n",
			wantErr: "duration",
		},
		{
			name:    "bad log level",
			src:     `log_level = "loud"` + "\n" + `nws { base_url = "https://nws.example.edu" }`,
			wantErr: "log_level",
		},
		{
			name:    "incomplete oauth",
			src:     `nws { base_url = "https://nws.example.edu" }`,
			env:     map[string]string{EnvOAuthClientID: "client"},
			wantErr: "oauth",
		},
		{
			name:    "bad tls env",
			src:     `nws { base_url = "https://nws.example.edu" }`,
			env:     map[string]string{EnvTLSVerify: "maybe"},
			wantErr: EnvTLSVerify,
		},
		{
			name:    "syntax",
			src:     `nws {`,
			wantErr: "error decoding config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("config.hcl", []byte(tt.src), env(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nws.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestDecode_FixturesWithoutBaseURL(t *testing.T) {
	cfg, err := Decode("config.hcl", nil, env(map[string]string{EnvFixturesDir: "/resources"}))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost", cfg.NWS.BaseURL)
	assert.Equal(t, "/resources", cfg.NWS.FixturesDir)
}
