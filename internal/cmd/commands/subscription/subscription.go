package subscription

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
	return "Manage channel subscriptions"
}

func (c *Command) Help() string {
	return `Usage: nws subscription <subcommand> [options]

  This command groups subcommands for listing, creating and deleting
  subscriptions.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	client         base.ClientFlags
	flagChannelID  string
	flagEndpointID string
	flagNetID      string
	flagPersonID   string
	flagFirst      int
	flagMax        int
}

func (c *ListCommand) Synopsis() string {
	return "List subscriptions"
}

func (c *ListCommand) Help() string {
	return `Usage: nws subscription list [options]

  List subscriptions matching every filter given. At least one filter is
  required.` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("subscription list", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagChannelID, "channel", "", "Channel UUID.")
	f.StringVar(&c.flagEndpointID, "endpoint", "", "Endpoint UUID.")
	f.StringVar(&c.flagNetID, "netid", "", "Subscriber net id.")
	f.StringVar(&c.flagPersonID, "person", "", "Person id.")
	f.IntVar(&c.flagFirst, "first", 0, "Index of the first result.")
	f.IntVar(&c.flagMax, "max", 0, "Maximum number of results.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	query := nws.SubscriptionQuery{
		ChannelID:    c.flagChannelID,
		EndpointID:   c.flagEndpointID,
		SubscriberID: c.flagNetID,
		PersonID:     c.flagPersonID,
		FirstResult:  c.flagFirst,
		MaxResults:   c.flagMax,
	}
	if query.ChannelID == "" && query.EndpointID == "" && query.SubscriberID == "" && query.PersonID == "" {
		c.UI.Error("at least one of -channel, -endpoint, -netid or -person is required")
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if query.ChannelID != "" && query.EndpointID != "" && query.SubscriberID == "" && query.PersonID == "" {
			subscription, err := client.GetSubscriptionByChannelIDAndEndpointID(ctx, query.ChannelID, query.EndpointID)
			if err != nil {
				return nil, err
			}
			return []*models.Subscription{subscription}, nil
		}
		return client.SearchSubscriptions(ctx, query)
	})
}

type CreateCommand struct {
	*base.Command

	client         base.ClientFlags
	flagChannelID  string
	flagEndpointID string
	flagNetID      string
	flagProtocol   string
	flagAddress    string
}

func (c *CreateCommand) Synopsis() string {
	return "Subscribe an endpoint to a channel"
}

func (c *CreateCommand) Help() string {
	return `Usage: nws subscription create -channel=<uuid> -endpoint=<uuid>
       nws subscription create -channel=<uuid> -netid=<netid> -protocol=<Email|SMS> -address=<address>

  Subscribe an existing endpoint, or one described by owner, protocol and
  address, to a channel.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("subscription create", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagChannelID, "channel", "", "(Required) Channel UUID.")
	f.StringVar(&c.flagEndpointID, "endpoint", "", "Endpoint UUID.")
	f.StringVar(&c.flagNetID, "netid", "", "Subscriber net id.")
	f.StringVar(&c.flagProtocol, "protocol", models.ProtocolEmail, "Endpoint protocol, Email or SMS.")
	f.StringVar(&c.flagAddress, "address", "", "Endpoint address.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagEndpointID == "" && c.flagAddress == "" {
		c.UI.Error("one of -endpoint or -address is required")
		return 1
	}

	channel := models.NewChannel()
	channel.ChannelID = c.flagChannelID
	subscription := &models.Subscription{
		Channel: channel,
		Endpoint: &models.Endpoint{
			EndpointID:      c.flagEndpointID,
			SubscriberID:    c.flagNetID,
			Protocol:        c.flagProtocol,
			EndpointAddress: c.flagAddress,
		},
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.CreateSubscription(ctx, subscription); err != nil {
			return nil, err
		}
		c.UI.Info("Subscribed to channel " + c.flagChannelID)
		return nil, nil
	})
}

type DeleteCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a subscription"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nws subscription delete -id=<uuid>` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("subscription delete", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Subscription UUID.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.DeleteSubscription(ctx, c.flagID); err != nil {
			return nil, err
		}
		c.UI.Info("Deleted subscription " + c.flagID)
		return nil, nil
	})
}
