package endpoint

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/uw-it-aca/restclients-nws/internal/cmd/base"
	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/nws"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage notification endpoints"
}

func (c *Command) Help() string {
	return `Usage: nws endpoint <subcommand> [options]

  This command groups subcommands for reading and writing endpoints, the
  email addresses and phone numbers notifications are delivered to.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type GetCommand struct {
	*base.Command

	client       base.ClientFlags
	flagID       string
	flagNetID    string
	flagProtocol string
	flagAddress  string
}

func (c *GetCommand) Synopsis() string {
	return "Show one endpoint"
}

func (c *GetCommand) Help() string {
	return `Usage: nws endpoint get -id=<uuid>
       nws endpoint get -netid=<netid> -protocol=<Email|SMS>
       nws endpoint get -address=<address>

  Fetch a single endpoint by id, by owner and protocol, or by address.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("endpoint get", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagID, "id", "", "Endpoint UUID.")
	f.StringVar(&c.flagNetID, "netid", "", "Subscriber net id. Requires -protocol.")
	f.StringVar(&c.flagProtocol, "protocol", "", "Endpoint protocol, Email or SMS.")
	f.StringVar(&c.flagAddress, "address", "", "Endpoint address.")

	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var lookup func(context.Context, *nws.Client) (*models.Endpoint, error)
	switch {
	case c.flagID != "":
		lookup = func(ctx context.Context, client *nws.Client) (*models.Endpoint, error) {
			return client.GetEndpointByID(ctx, c.flagID)
		}
	case c.flagNetID != "" && c.flagProtocol != "":
		lookup = func(ctx context.Context, client *nws.Client) (*models.Endpoint, error) {
			return client.GetEndpointBySubscriberIDAndProtocol(ctx, c.flagNetID, c.flagProtocol)
		}
	case c.flagAddress != "":
		lookup = func(ctx context.Context, client *nws.Client) (*models.Endpoint, error) {
			return client.GetEndpointByAddress(ctx, c.flagAddress)
		}
	default:
		c.UI.Error("one of -id, -netid with -protocol, or -address is required")
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		return lookup(ctx, client)
	})
}

type ListCommand struct {
	*base.Command

	client    base.ClientFlags
	flagNetID string
}

func (c *ListCommand) Synopsis() string {
	return "List a subscriber's endpoints"
}

func (c *ListCommand) Help() string {
	return `Usage: nws endpoint list -netid=<netid>` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("endpoint list", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagNetID, "netid", "", "(Required) Subscriber net id.")
	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagNetID == "" {
		c.UI.Error("netid flag is required")
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		return client.GetEndpointsBySubscriberID(ctx, c.flagNetID)
	})
}

type CreateCommand struct {
	*base.Command

	client       base.ClientFlags
	flagNetID    string
	flagProtocol string
	flagAddress  string
	flagCarrier  string
}

func (c *CreateCommand) Synopsis() string {
	return "Create an endpoint"
}

func (c *CreateCommand) Help() string {
	return `Usage: nws endpoint create -netid=<netid> -protocol=<Email|SMS> -address=<address>` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("endpoint create", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagNetID, "netid", "", "(Required) Subscriber net id.")
	f.StringVar(&c.flagProtocol, "protocol", models.ProtocolEmail, "Endpoint protocol, Email or SMS.")
	f.StringVar(&c.flagAddress, "address", "", "(Required) Email address or phone number.")
	f.StringVar(&c.flagCarrier, "carrier", "", "SMS carrier.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagAddress == "" {
		c.UI.Error("address flag is required")
		return 1
	}

	endpoint := &models.Endpoint{
		SubscriberID:    c.flagNetID,
		Protocol:        c.flagProtocol,
		EndpointAddress: c.flagAddress,
		Carrier:         c.flagCarrier,
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.CreateEndpoint(ctx, endpoint); err != nil {
			return nil, err
		}
		c.UI.Info(fmt.Sprintf("Created %s endpoint %s", endpoint.Protocol, endpoint.EndpointAddress))
		return nil, nil
	})
}

type DeleteCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete an endpoint"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nws endpoint delete -id=<uuid>` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("endpoint delete", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Endpoint UUID.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.DeleteEndpoint(ctx, c.flagID); err != nil {
			return nil, err
		}
		c.UI.Info("Deleted endpoint " + c.flagID)
		return nil, nil
	})
}

type ResendVerificationCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *ResendVerificationCommand) Synopsis() string {
	return "Resend the SMS verification message"
}

func (c *ResendVerificationCommand) Help() string {
	return `Usage: nws endpoint resend-verification -id=<uuid>

  Ask the service to send the verification text to an SMS endpoint again.` +
		c.Flags().Help()
}

func (c *ResendVerificationCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("endpoint resend-verification", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Endpoint UUID.")
	return f
}

func (c *ResendVerificationCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.ResendSMSEndpointVerification(ctx, c.flagID); err != nil {
			return nil, err
		}
		c.UI.Info("Verification resent for endpoint " + c.flagID)
		return nil, nil
	})
}
