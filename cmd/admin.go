package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
)

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the registry to a CSV file" }
func (*exportCmd) Usage() string {
	return `bbk export [-o <file>]
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "o", "export_accounts.csv", "Destination CSV file.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		if err := bank.Export(c.file); err != nil {
			return err
		}
		fmt.Printf("Exported %d accounts to %s\n", len(bank.Accounts()), c.file)
		return nil
	})
}

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import accounts from a CSV file" }
func (*importCmd) Usage() string {
	return `bbk import -i <file>

  Re-creates the accounts found in the file through the normal creation path:
  each gets a fresh account number, and rows that fail validation are skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "accounts_import.csv", "Source CSV file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		created, err := bank.ImportFile(c.file)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d accounts from %s\n", created, c.file)
		return nil
	})
}

type wipeCmd struct {
	confirm bool
}

func (*wipeCmd) Name() string     { return "wipe" }
func (*wipeCmd) Synopsis() string { return "delete all accounts and truncate the ledger" }
func (*wipeCmd) Usage() string {
	return `bbk wipe -confirm

  Irreversibly clears the registry and the transaction log as one
  administrative action. Refuses to run without -confirm.
`
}

func (c *wipeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.confirm, "confirm", false, "Confirm the irreversible wipe.")
}

func (c *wipeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		if err := bank.DeleteAll(c.confirm); err != nil {
			return err
		}
		if err := rewriteLedger(cfg, bank); err != nil {
			return err
		}
		fmt.Println("All accounts deleted and ledger truncated.")
		return nil
	})
}
