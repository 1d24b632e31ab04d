package dispatch

import (
	"context"
	"encoding/json"
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
	return "Send and withdraw dispatches"
}

func (c *Command) Help() string {
	return `Usage: nws dispatch <subcommand> [options]

  This command groups subcommands for dispatches, the messages fanned out to
  a channel's subscribers.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type SendCommand struct {
	*base.Command

	client          base.ClientFlags
	flagMessageType string
	flagContent     string
	flagDirective   string
}

func (c *SendCommand) Synopsis() string {
	return "Create a dispatch"
}

func (c *SendCommand) Help() string {
	return `Usage: nws dispatch send -message-type=<surrogate id> -content='{"SLN": "12345"}'

  Create a dispatch with a freshly generated id and print the dispatch.` +
		c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("dispatch send", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagMessageType, "message-type", "", "(Required) Message type surrogate id.")
	f.StringVar(&c.flagContent, "content", "{}", "Dispatch content as a JSON object.")
	f.StringVar(&c.flagDirective, "directive", "{}", "Dispatch directive as a JSON object.")

	return f
}

func (c *SendCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagMessageType == "" {
		c.UI.Error("message-type flag is required")
		return 1
	}

	dispatch := models.NewDispatch(c.flagMessageType)
	if err := json.Unmarshal([]byte(c.flagContent), &dispatch.Content); err != nil {
		c.UI.Error(fmt.Sprintf("invalid content: %v", err))
		return 1
	}
	if err := json.Unmarshal([]byte(c.flagDirective), &dispatch.Directive); err != nil {
		c.UI.Error(fmt.Sprintf("invalid directive: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.CreateDispatch(ctx, dispatch); err != nil {
			return nil, err
		}
		return dispatch, nil
	})
}

type DeleteCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a dispatch"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nws dispatch delete -id=<uuid>` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("dispatch delete", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Dispatch UUID.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.DeleteDispatch(ctx, c.flagID); err != nil {
			return nil, err
		}
		c.UI.Info("Deleted dispatch " + c.flagID)
		return nil, nil
	})
}
