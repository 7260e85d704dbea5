package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker/shell"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start the interactive expense tracker session" }
func (*sessionCmd) Usage() string {
	return `xpt session

  Starts the interactive menu: login or register, then record expenses,
  check balances, manage the savings vault, and save reports. The registry
  file is written on registration and on exit.
`
}

func (*sessionCmd) SetFlags(_ *flag.FlagSet) {}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := shell.New(os.Stdout, os.Stdin, registry, *registryFile, *dataDir)
	s.ReadPassword = shell.TerminalPassword
	if err := s.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
