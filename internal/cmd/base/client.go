package base

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/uw-it-aca/restclients-nws/internal/config"
	"github.com/uw-it-aca/restclients-nws/pkg/nws"
)

// ClientFlags are the connection and output flags shared by every command
// that talks to the service.
type ClientFlags struct {
	Config   string
	BaseURL  string
	ActAs    string
	Fixtures string
	Format   string
	LogLevel string
}

// Register adds the client flags to f.
func (cf *ClientFlags) Register(f *FlagSet) {
	f.StringVar(&cf.Config, "config", "", "Path to an HCL config file.")
	f.StringVar(&cf.BaseURL, "base-url", "",
		"Service base URL. Overrides the config file and "+config.EnvBaseURL+".")
	f.StringVar(&cf.ActAs, "act-as", "",
		"Net id to act as for write requests. Overrides "+config.EnvActAs+".")
	f.StringVar(&cf.Fixtures, "fixtures", "",
		"Answer requests from fixture files under this directory.")
	f.StringVar(&cf.Format, "format", "json", "Output format: json or yaml.")
	f.StringVar(&cf.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error or off. Overrides "+config.EnvLogLevel+".")
}

// lookupEnv layers flag values over the process environment.
func (cf *ClientFlags) lookupEnv(key string) (string, bool) {
	switch {
	case key == config.EnvBaseURL && cf.BaseURL != "":
		return cf.BaseURL, true
	case key == config.EnvActAs && cf.ActAs != "":
		return cf.ActAs, true
	case key == config.EnvFixturesDir && cf.Fixtures != "":
		return cf.Fixtures, true
	case key == config.EnvLogLevel && cf.LogLevel != "":
		return cf.LogLevel, true
	}
	return os.LookupEnv(key)
}

// NewClient builds a service client from the config file, environment and
// flags, in increasing order of precedence.
func (c *Command) NewClient(cf *ClientFlags) (*nws.Client, error) {
	if err := validation.Validate(cf.Format, validation.In("json", "yaml")); err != nil {
		return nil, fmt.Errorf("invalid format %q: %w", cf.Format, err)
	}

	cfg, err := config.Load(cf.Config, cf.lookupEnv)
	if err != nil {
		return nil, err
	}

	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}
	return nws.NewClient(clientCfg)
}

// Output writes v to the UI in the requested format.
func (c *Command) Output(format string, v any) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml":
		out, err = toYAML(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	c.UI.Output(strings.TrimRight(string(out), "\n"))
	return nil
}

// toYAML renders v through its JSON encoding so records keep their wire key
// names and order.
func toYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	resetStyle(&doc)

	return yaml.Marshal(&doc)
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}

// RunClient builds a client from cf, calls fn with it and writes fn's result
// in the requested format. A nil result prints nothing. The returned value is
// the process exit code.
func (c *Command) RunClient(cf *ClientFlags, fn func(context.Context, *nws.Client) (any, error)) int {
	client, err := c.NewClient(cf)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := fn(ctx, client)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if result == nil {
		return 0
	}

	if err := c.Output(cf.Format, result); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
