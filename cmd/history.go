package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
	"github.com/bankbook/bankbook/renderer"
)

type historyCmd struct {
	account int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the transaction history of an account" }
func (*historyCmd) Usage() string {
	return `bbk history -a <account>

  Shows every ledger entry recorded for the account, in chronological order.
  Works for account numbers that are no longer in the registry: log entries
  are never purged.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		printMarkdown(renderer.History(c.account, bank.History(c.account)))
		return nil
	})
}
