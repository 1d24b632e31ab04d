package cmd

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/cli"

	"github.com/uw-it-aca/restclients-nws/internal/cmd/base"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/channel"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/dispatch"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/endpoint"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/messagetype"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/person"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/subscription"
	"github.com/uw-it-aca/restclients-nws/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

// commandName joins CamelCase words into a CLI command path, for example
// ("MessageType", "Get") becomes "message-type get".
func commandName(words ...string) string {
	for i, w := range words {
		words[i] = strcase.ToKebab(w)
	}
	return strings.Join(words, " ")
}

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
	}

	factory := func(c cli.Command) cli.CommandFactory {
		return func() (cli.Command, error) {
			return c, nil
		}
	}

	Commands = map[string]cli.CommandFactory{
		commandName("Version"): factory(&version.Command{Command: b}),

		commandName("Endpoint"):                       factory(&endpoint.Command{Command: b}),
		commandName("Endpoint", "Get"):                factory(&endpoint.GetCommand{Command: b}),
		commandName("Endpoint", "List"):               factory(&endpoint.ListCommand{Command: b}),
		commandName("Endpoint", "Create"):             factory(&endpoint.CreateCommand{Command: b}),
		commandName("Endpoint", "Delete"):             factory(&endpoint.DeleteCommand{Command: b}),
		commandName("Endpoint", "ResendVerification"): factory(&endpoint.ResendVerificationCommand{Command: b}),

		commandName("Person"):           factory(&person.Command{Command: b}),
		commandName("Person", "Get"):    factory(&person.GetCommand{Command: b}),
		commandName("Person", "Create"): factory(&person.CreateCommand{Command: b}),

		commandName("Channel"):           factory(&channel.Command{Command: b}),
		commandName("Channel", "Get"):    factory(&channel.GetCommand{Command: b}),
		commandName("Channel", "Active"): factory(&channel.ActiveCommand{Command: b}),
		commandName("Channel", "Search"): factory(&channel.SearchCommand{Command: b}),

		commandName("Subscription"):           factory(&subscription.Command{Command: b}),
		commandName("Subscription", "List"):   factory(&subscription.ListCommand{Command: b}),
		commandName("Subscription", "Create"): factory(&subscription.CreateCommand{Command: b}),
		commandName("Subscription", "Delete"): factory(&subscription.DeleteCommand{Command: b}),

		commandName("Dispatch"):           factory(&dispatch.Command{Command: b}),
		commandName("Dispatch", "Send"):   factory(&dispatch.SendCommand{Command: b}),
		commandName("Dispatch", "Delete"): factory(&dispatch.DeleteCommand{Command: b}),

		commandName("MessageType"):           factory(&messagetype.Command{Command: b}),
		commandName("MessageType", "Get"):    factory(&messagetype.GetCommand{Command: b}),
		commandName("MessageType", "Delete"): factory(&messagetype.DeleteCommand{Command: b}),
	}
}
