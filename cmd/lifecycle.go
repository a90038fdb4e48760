package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
)

type closeCmd struct {
	account int
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "close an account" }
func (*closeCmd) Usage() string {
	return `bbk close -a <account>

  Marks an active account inactive. The balance is retained and the account
  stays visible in reports; it can be reopened later.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		account, err := bank.Close(c.account)
		if err != nil {
			return err
		}
		fmt.Printf("Closed account %d, retained balance %s\n", account.Number, account.Balance)
		return nil
	})
}

type reopenCmd struct {
	account int
}

func (*reopenCmd) Name() string     { return "reopen" }
func (*reopenCmd) Synopsis() string { return "reopen a closed account" }
func (*reopenCmd) Usage() string {
	return `bbk reopen -a <account>

  Marks an inactive account active again, balance and type unchanged.
`
}

func (c *reopenCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
}

func (c *reopenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		account, err := bank.Reopen(c.account)
		if err != nil {
			return err
		}
		fmt.Printf("Reopened account %d with balance %s\n", account.Number, account.Balance)
		return nil
	})
}

type renameCmd struct {
	account int
	name    string
}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "change the holder name of an account" }
func (*renameCmd) Usage() string {
	return `bbk rename -a <account> -name <new holder name>
`
}

func (c *renameCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
	f.StringVar(&c.name, "name", "", "New holder name.")
}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		account, err := bank.Rename(c.account, c.name)
		if err != nil {
			return err
		}
		fmt.Printf("Renamed account %d to %s\n", account.Number, account.Name)
		return nil
	})
}

type setPinCmd struct {
	account int
	pin     int
}

func (*setPinCmd) Name() string     { return "set-pin" }
func (*setPinCmd) Synopsis() string { return "store a 4-digit PIN on an account" }
func (*setPinCmd) Usage() string {
	return `bbk set-pin -a <account> -pin <pin>

  Stores a PIN between 1000 and 9999 on the account.
`
}

func (c *setPinCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
	f.IntVar(&c.pin, "pin", 0, "4-digit PIN.")
}

func (c *setPinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		if err := bank.SetPIN(c.account, c.pin); err != nil {
			return err
		}
		fmt.Printf("PIN set on account %d\n", c.account)
		return nil
	})
}
