package channel

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mitchellh/cli"

	"github.com/uw-it-aca/restclients-nws/internal/cmd/base"
	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/nws"
)

// CourseAvailable is the channel type used for course seat notifications.
const CourseAvailable = "uw_student_courseavailable"

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Browse notification channels"
}

func (c *Command) Help() string {
	return `Usage: nws channel <subcommand> [options]

  This command groups subcommands for looking up channels.`
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
	return "Show one channel"
}

func (c *GetCommand) Help() string {
	return `Usage: nws channel get -id=<uuid>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("channel get", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Channel UUID.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		return client.GetChannelByID(ctx, c.flagID)
	})
}

type ActiveCommand struct {
	*base.Command

	client base.ClientFlags
	flagID string
}

func (c *ActiveCommand) Synopsis() string {
	return "Report whether a channel is active"
}

func (c *ActiveCommand) Help() string {
	return `Usage: nws channel active -id=<uuid>

  Print true when the channel exists and has not expired.` + c.Flags().Help()
}

func (c *ActiveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("channel active", flag.ContinueOnError))
	c.client.Register(f)
	f.StringVar(&c.flagID, "id", "", "(Required) Channel UUID.")
	return f
}

func (c *ActiveCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		return client.IsChannelActive(ctx, c.flagID)
	})
}

type SearchCommand struct {
	*base.Command

	client          base.ClientFlags
	flagType        string
	flagSurrogateID string
	flagSLN         string
	flagYear        int
	flagQuarter     string
	flagActive      bool
	flagExpires     string
	flagMax         int
}

func (c *SearchCommand) Synopsis() string {
	return "Search channels"
}

func (c *SearchCommand) Help() string {
	return `Usage: nws channel search [options]

  Search channels by type and course tags. With -active, only channels of
  the given term that expire after -expires-after (default: today) are
  listed.` + c.Flags().Help()
}

func (c *SearchCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("channel search", flag.ContinueOnError))
	c.client.Register(f)

	f.StringVar(&c.flagType, "type", CourseAvailable, "Channel type.")
	f.StringVar(&c.flagSurrogateID, "surrogate-id", "", "Channel surrogate id.")
	f.StringVar(&c.flagSLN, "sln", "", "Section SLN tag.")
	f.IntVar(&c.flagYear, "year", 0, "Term year tag.")
	f.StringVar(&c.flagQuarter, "quarter", "", "Term quarter tag.")
	f.BoolVar(&c.flagActive, "active", false, "Only channels that have not expired. Requires -year and -quarter.")
	f.StringVar(&c.flagExpires, "expires-after", "", "Timestamp used with -active.")
	f.IntVar(&c.flagMax, "max", 0, "Maximum number of results.")

	return f
}

func (c *SearchCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagActive {
		if c.flagYear == 0 || c.flagQuarter == "" {
			c.UI.Error("-active requires -year and -quarter")
			return 1
		}

		var expiresAfter time.Time
		if c.flagExpires != "" {
			t, err := models.ParseTimestamp(c.flagExpires)
			if err != nil {
				c.UI.Error(fmt.Sprintf("invalid expires-after: %v", err))
				return 1
			}
			expiresAfter = t
		}

		return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
			return client.GetActiveChannelsByYearQuarter(ctx, c.flagType, c.flagYear, c.flagQuarter, expiresAfter)
		})
	}

	query := nws.ChannelQuery{
		Type:        c.flagType,
		SurrogateID: c.flagSurrogateID,
		TagSLN:      c.flagSLN,
		TagYear:     c.flagYear,
		TagQuarter:  c.flagQuarter,
		MaxResults:  c.flagMax,
	}
	return c.RunClient(&c.client, func(ctx context.Context, client *nws.Client) (any, error) {
		return client.SearchChannels(ctx, query)
	})
}
