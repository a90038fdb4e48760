package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bankbook/bankbook"
	"github.com/bankbook/bankbook/renderer"
)

type summaryCmd struct {
	top int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of the whole book" }
func (*summaryCmd) Usage() string {
	return `bbk summary [-top <n>]

  Displays account counts, the average balance, the youngest and oldest
  holders and the top accounts by balance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "top", 0, "How many accounts in the top-by-balance table. Defaults to the configured value.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		top := c.top
		if top <= 0 {
			top = cfg.TopN
		}
		printMarkdown(renderer.Summary(bank.Summary(top)))
		return nil
	})
}

type interestCmd struct {
	account int
	rate    float64
	years   float64
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "project simple interest on an account balance" }
func (*interestCmd) Usage() string {
	return `bbk interest -a <account> -rate <percent> -years <years>

  Computes balance × rate% × years against the account's current balance.
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "a", 0, "Account number.")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate in percent.")
	f.Float64Var(&c.years, "years", 1, "Number of years.")
}

// interestMessage keeps the full precision of the years argument, so
// fractional periods such as 10.5 years print as given.
func interestMessage(account int, rate, years float64, interest bankbook.Money) string {
	return fmt.Sprintf("Simple interest for account %d at %.2f%% over %g years: %s",
		account, rate, years, interest)
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withBank(func(cfg *Config, bank *bankbook.Bank) error {
		interest, err := bank.SimpleInterest(c.account, c.rate, c.years)
		if err != nil {
			return err
		}
		fmt.Println(interestMessage(c.account, c.rate, c.years, interest))
		return nil
	})
}
