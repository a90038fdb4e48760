package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
)

type createCmd struct {
	name    string
	age     int
	accType string
	deposit string
	pin     int
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "open a new account" }
func (*createCmd) Usage() string {
	return `bbk create -name <holder> -age <age> -type <Savings|Current> -deposit <amount> [-pin <pin>]

  Opens a new account. The holder must be at least 18 and the initial deposit
  must meet the type minimum (Savings: 500, Current: 1000). The account number
  is allocated from the sequence and printed on success.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Holder name.")
	f.IntVar(&c.age, "age", 0, "Holder age, 18 or older.")
	f.StringVar(&c.accType, "type", "Savings", "Account type: Savings or Current.")
	f.StringVar(&c.deposit, "deposit", "", "Initial deposit amount.")
	f.IntVar(&c.pin, "pin", 0, "Optional 4-digit PIN.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		accType, err := bankbook.ParseAccountType(c.accType)
		if err != nil {
			return err
		}
		deposit, err := bankbook.ParseMoney(c.deposit)
		if err != nil {
			return err
		}
		var pin *int
		if c.pin != 0 {
			pin = &c.pin
		}
		account, err := bank.Create(c.name, c.age, accType, deposit, pin)
		if err != nil {
			return err
		}
		fmt.Printf("Created account %d for %s with balance %s\n", account.Number, account.Name, account.Balance)
		return nil
	})
}
