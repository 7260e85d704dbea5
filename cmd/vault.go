package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// --- Deposit Command ---

type depositCmd struct {
	username string
	password string
	amount   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add money to a user's savings vault" }
func (*depositCmd) Usage() string {
	return `xpt deposit -u <username> -p <password> -a <amount>

  Deposits a positive amount into the savings vault and persists the registry.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.amount, "a", "", "Amount to deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := tracker.ParseMoney(c.amount)
	if err != nil || !amount.IsPositive() || c.username == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	registry, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, err := registry.Authenticate(c.username, c.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	account.Deposit(amount)
	if err := saveRegistry(registry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s. Savings vault balance: %s.\n", amount, account.SavingsVault())
	return subcommands.ExitSuccess
}

// --- Withdraw Command ---

type withdrawCmd struct {
	username string
	password string
	amount   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from a user's savings vault" }
func (*withdrawCmd) Usage() string {
	return `xpt withdraw -u <username> -p <password> -a <amount>

  Withdraws an amount from the savings vault. Withdrawals exceeding the
  balance are rejected and leave the vault unchanged.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.amount, "a", "", "Amount to withdraw")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := tracker.ParseMoney(c.amount)
	if err != nil || !amount.IsPositive() || c.username == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	registry, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	account, err := registry.Authenticate(c.username, c.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := account.Withdraw(amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (balance %s)\n", err, account.SavingsVault())
		return subcommands.ExitFailure
	}
	if err := saveRegistry(registry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrew %s. Savings vault balance: %s.\n", amount, account.SavingsVault())
	return subcommands.ExitSuccess
}
