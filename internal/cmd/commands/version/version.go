package version

import (
	"github.com/uw-it-aca/restclients-nws/internal/cmd/base"
	"github.com/uw-it-aca/restclients-nws/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: nws version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
