package messagetype

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/uw-it-aca/restclients-nws/internal/cmd/base"
	"github.com/uw-it-aca/restclients-nws/pkg/nws"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect message types"
}

func (c *Command) Help() string {
	return `Usage: nws message-type <subcommand> [options]

  This command groups subcommands for message types, which describe how a
  dispatch is rendered and delivered.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type GetCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *GetCommand) Synopsis() string {
	return "Show one message type"
}

func (c *GetCommand) Help() string {
	return `Usage: nws message-type get -id=<uuid>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("message-type get", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Message type UUID.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		return client.GetMessageTypeByID(ctx, c.flagID)
	})
}

type DeleteCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a message type"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nws message-type delete -id=<uuid>` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("message-type delete", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Message type UUID.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.DeleteMessageType(ctx, c.flagID); err != nil {
			return nil, err
		}
		c.UI.Info("Deleted message type " + c.flagID)
		return nil, nil
	})
}
