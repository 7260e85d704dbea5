package cmd

import (
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "session")

	c.Register(&registerCmd{}, "accounts")
	c.Register(&usersCmd{}, "accounts")
	c.Register(&balanceCmd{}, "accounts")

	c.Register(&depositCmd{}, "vault")
	c.Register(&withdrawCmd{}, "vault")

	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}
