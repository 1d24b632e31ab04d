package person

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
	return "Manage notification subscribers"
}

func (c *Command) Help() string {
	return `Usage: nws person <subcommand> [options]

  This command groups subcommands for reading and creating persons.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type GetCommand struct {
	*base.Command

	client    base.ClientFlags
	flagRegID string
	flagNetID string
}

func (c *GetCommand) Synopsis() string {
	return "Show a person and their endpoints"
}

func (c *GetCommand) Help() string {
	return `Usage: nws person get -netid=<netid>
       nws person get -regid=<regid>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("person get", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagNetID, "netid", "", "UW net id.")
	f.StringVar(&c.flagRegID, "regid", "", "UW registry id.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if (c.flagNetID == "") == (c.flagRegID == "") {
		c.UI.Error("exactly one of -netid or -regid is required")
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if c.flagRegID != "" {
			return client.GetPersonByRegID(ctx, c.flagRegID)
		}
		return client.GetPersonBySurrogateID(ctx, c.flagNetID)
	})
}

type CreateCommand struct {
	*base.Command

	client    base.ClientFlags
	flagNetID string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a person"
}

func (c *CreateCommand) Help() string {
	return `Usage: nws person create -netid=<netid>` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("person create", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagNetID, "netid", "", "(Required) UW net id.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	person := models.NewPerson()
	person.SurrogateID = c.flagNetID

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		if err := client.CreatePerson(ctx, person); err != nil {
			return nil, err
		}
		c.UI.Info("Created person " + person.SurrogateID)
		return nil, nil
	})
}
