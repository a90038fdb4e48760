package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
)

type depositCmd struct {
	account int
	amount  string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `bbk deposit -a <account> -m <amount>

  Deposits the amount into an active account. A single deposit may not exceed
  100000.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
	f.StringVar(&c.amount, "m", "", "Amount to deposit.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		amount, err := bankbook.ParseMoney(c.amount)
		if err != nil {
			return err
		}
		balance, err := bank.Deposit(c.account, amount)
		if err != nil {
			return err
		}
		fmt.Printf("Deposited %s into account %d, new balance %s\n", amount, c.account, balance)
		return nil
	})
}

type withdrawCmd struct {
	account int
	amount  string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `bbk withdraw -a <account> -m <amount>

  Withdraws the amount from an active account. The remaining balance must
  stay above the account type's minimum, and total withdrawals and transfer
  debits on one calendar day may not exceed 50000.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
	f.StringVar(&c.amount, "m", "", "Amount to withdraw.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		amount, err := bankbook.ParseMoney(c.amount)
		if err != nil {
			return err
		}
		balance, err := bank.Withdraw(c.account, amount)
		if err != nil {
			return err
		}
		fmt.Printf("Withdrew %s from account %d, new balance %s\n", amount, c.account, balance)
		return nil
	})
}

type transferCmd struct {
	from   int
	to     int
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between two accounts" }
func (*transferCmd) Usage() string {
	return `bbk transfer -from <account> -to <account> -m <amount>

  Moves the amount from one active account to another as one unit. The sender
  is subject to the same minimum-balance and daily-limit rules as a
  withdrawal; the receiver has no limit check.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.from, "from", 0, "Sender account number.")
	f.IntVar(&c.to, "to", 0, "Receiver account number.")
	f.StringVar(&c.amount, "m", "", "Amount to transfer.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		amount, err := bankbook.ParseMoney(c.amount)
		if err != nil {
			return err
		}
		fromBalance, toBalance, err := bank.Transfer(c.from, c.to, amount)
		if err != nil {
			return err
		}
		fmt.Printf("Transferred %s from account %d (balance %s) to account %d (balance %s)\n",
			amount, c.from, fromBalance, c.to, toBalance)
		return nil
	})
}
