package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type registerCmd struct {
	name     string
	username string
	password string
	income   string
	savings  string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user account" }
func (*registerCmd) Usage() string {
	return `xpt register -n <name> -u <username> -p <password> -income <amount> [-savings <amount>]

  Creates a new account and persists the registry immediately. The initial
  savings amount is deposited into the savings vault.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Display name")
	f.StringVar(&c.username, "u", "", "Username (unique, case-sensitive)")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.income, "income", "0", "Total weekly income")
	f.StringVar(&c.savings, "savings", "0", "Initial amount for the savings vault")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.username == "" || c.password == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	income, err := tracker.ParseMoney(c.income)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing income: %v\n", err)
		return subcommands.ExitUsageError
	}
	savings, err := tracker.ParseMoney(c.savings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing savings: %v\n", err)
		return subcommands.ExitUsageError
	}
	if income.IsNegative() || savings.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: income and savings must be non-negative.")
		return subcommands.ExitUsageError
	}

	registry, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, err := registry.Register(c.name, c.username, c.password, income, savings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveRegistry(registry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered user %q with a vault balance of %s.\n", account.Username(), account.SavingsVault())
	return subcommands.ExitSuccess
}
