package base

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// FlagSet wraps a standard flag set with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet whose parse errors are returned instead of
// printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(new(bytes.Buffer))
	return &FlagSet{FlagSet: f}
}

// Help renders the flags for inclusion in a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}
