package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
	"github.com/bankbook/bankbook/renderer"
)

type listCmd struct {
	status string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list accounts" }
func (*listCmd) Usage() string {
	return `bbk list [-status <active|inactive|all>]

  Lists accounts in registry order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "all", "Filter: active, inactive or all.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		var title string
		var accounts []bankbook.Account
		switch c.status {
		case "active":
			title, accounts = "Active Accounts", bank.ListActive()
		case "inactive":
			title, accounts = "Inactive Accounts", bank.ListInactive()
		case "all":
			title, accounts = "Accounts", bank.Accounts()
		default:
			return fmt.Errorf("unknown status filter %q", c.status)
		}
		printMarkdown(renderer.Accounts(title, accounts))
		return nil
	})
}

type findCmd struct {
	name string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "find accounts by holder name" }
func (*findCmd) Usage() string {
	return `bbk find -name <query>

  Lists the accounts whose holder name contains the query, ignoring case.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Substring of the holder name.")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		matches := bank.FindByName(c.name)
		printMarkdown(renderer.Accounts(fmt.Sprintf("Accounts matching %q", c.name), matches))
		return nil
	})
}

type balanceCmd struct {
	account int
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show one account in detail" }
func (*balanceCmd) Usage() string {
	return `bbk balance -a <account>
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		account, err := bank.Find(c.account)
		if err != nil {
			return err
		}
		printMarkdown(renderer.Account(account))
		return nil
	})
}
