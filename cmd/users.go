package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list all registered user accounts" }
func (*usersCmd) Usage() string {
	return `xpt users

  Lists every account in the registry file, without passwords.
`
}

func (*usersCmd) SetFlags(_ *flag.FlagSet) {}

func (c *usersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.UsersMarkdown(registry))
	return subcommands.ExitSuccess
}
