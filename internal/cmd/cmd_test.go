package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uw-it-aca/restclients-nws/internal/config"
	"github.com/uw-it-aca/restclients-nws/internal/version"
)

const testEndpointID = "780f2a49-2118-4969-9bef-bbd38c26970a"

const endpointFixture = `{"Endpoint": {
	"EndpointID": "780f2a49-2118-4969-9bef-bbd38c26970a",
	"EndpointAddress": "222-222-3333",
	"Protocol": "sms",
	"SubscriberID": "javerage",
	"Status": "unconfirmed",
	"Active": false
}}`

// writeFixtures lays files out the way the fixture transport reads them and
// returns the fixture root.
func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, "nws", "file", filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func runCLI(t *testing.T, args ...string) (int, *cli.MockUi) {
	t.Helper()
	for _, key := range []string{
		config.EnvLogLevel, config.EnvBaseURL, config.EnvAuthToken, config.EnvActAs, config.EnvFixturesDir,
		config.EnvTimeout, config.EnvTLSVerify, config.EnvOAuthClientID,
		config.EnvOAuthClientSecret, config.EnvOAuthTokenURL,
	} {
		t.Setenv(key, "")
	}

	ui := cli.NewMockUi()
	code := run(append([]string{"nws"}, args...), hclog.NewNullLogger(), ui)
	return code, ui
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "endpoint", commandName("Endpoint"))
	assert.Equal(t, "message-type get", commandName("MessageType", "Get"))
	assert.Equal(t, "endpoint resend-verification", commandName("Endpoint", "ResendVerification"))
}

func TestVersion(t *testing.T) {
	code, ui := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), version.Version)
}

func TestEndpointGet_JSON(t *testing.T) {
	root := writeFixtures(t, map[string]string{
		"notification/v1/endpoint/" + testEndpointID: endpointFixture,
	})

	code, ui := runCLI(t, "endpoint", "get", "-fixtures="+root, "-id="+testEndpointID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, `"Protocol": "sms"`)
	assert.Contains(t, out, `"Active": false`)
}

func TestEndpointGet_YAML(t *testing.T) {
	root := writeFixtures(t, map[string]string{
		"notification/v1/endpoint/" + testEndpointID: endpointFixture,
	})

	code, ui := runCLI(t, "endpoint", "get", "-fixtures="+root, "-format=yaml", "-id="+testEndpointID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Protocol: sms")
	assert.Contains(t, out, "EndpointID: 780f2a49-2118-4969-9bef-bbd38c26970a")
}

func TestEndpointGet_Errors(t *testing.T) {
	root := writeFixtures(t, nil)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "no lookup flags",
			args:    []string{"endpoint", "get", "-fixtures=" + root},
			wantErr: "-id",
		},
		{
			name:    "invalid id",
			args:    []string{"endpoint", "get", "-fixtures=" + root, "-id=nope"},
			wantErr: "invalid UUID",
		},
		{
			name:    "not found",
			args:    []string{"endpoint", "get", "-fixtures=" + root, "-id=" + testEndpointID},
			wantErr: "404",
		},
		{
			name:    "bad format",
			args:    []string{"endpoint", "get", "-fixtures=" + root, "-format=xml", "-id=" + testEndpointID},
			wantErr: "invalid format",
		},
		{
			name:    "bad log level",
			args:    []string{"endpoint", "get", "-fixtures=" + root, "-log-level=loud", "-id=" + testEndpointID},
			wantErr: "log_level",
		},
		{
			name:    "unknown flag",
			args:    []string{"endpoint", "get", "-bogus"},
			wantErr: "error parsing flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ui := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, ui.ErrorWriter.String(), tt.wantErr)
		})
	}
}

func TestDispatchSend(t *testing.T) {
	root := writeFixtures(t, map[string]string{
		"notification/v1/dispatch.POST": "",
	})

	code, ui := runCLI(t, "dispatch", "send", "-fixtures="+root,
		"-message-type=uw_student_courseavailable", `-content={"SLN": "12345"}`)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, `"MessageType": "uw_student_courseavailable"`)
	assert.Contains(t, out, `"SLN": "12345"`)
}

func TestDispatchSend_InvalidContent(t *testing.T) {
	code, ui := runCLI(t, "dispatch", "send", "-message-type=uw_student_courseavailable", "-content=[")
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "invalid content")
}

func TestSubscriptionCreate(t *testing.T) {
	root := writeFixtures(t, map[string]string{
		"notification/v1/subscription.POST":              "",
		"notification/v1/subscription.POST.http-headers": `{"status": 201}`,
	})

	code, ui := runCLI(t, "subscription", "create", "-fixtures="+root,
		"-channel=b779df7b-d6f6-4afb-8165-8dbe6232119f", "-endpoint="+testEndpointID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "Subscribed to channel")
}

func TestChannelActive(t *testing.T) {
	const channelID = "b779df7b-d6f6-4afb-8165-8dbe6232119f"
	root := writeFixtures(t, map[string]string{
		"notification/v1/channel/" + channelID: `{"Channel": {
			"ChannelID": "b779df7b-d6f6-4afb-8165-8dbe6232119f",
			"SurrogateID": "2012,autumn,cse,100,w",
			"Type": "uw_student_courseavailable",
			"Name": "FLUENCY IN INFORMATION TECHNOLOGY",
			"Expires": "2000-01-01T00:00:00Z"
		}}`,
	})

	code, ui := runCLI(t, "channel", "active", "-fixtures="+root, "-id="+channelID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "false", strings.TrimSpace(ui.OutputWriter.String()))
}
