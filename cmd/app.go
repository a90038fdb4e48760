// Package cmd implements the CLI application to manage the bank book.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bankbook/bankbook"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&createCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&transferCmd{},
	&closeCmd{},
	&reopenCmd{},
	&renameCmd{},
	&setPinCmd{},
	&listCmd{},
	&findCmd{},
	&balanceCmd{},
	&historyCmd{},
	&summaryCmd{},
	&interestCmd{},
	&exportCmd{},
	&importCmd{},
	&wipeCmd{},
	&topicCmd{},
}

// Config holds the application settings: where the data files live and how
// to log. Values come from defaults, then an optional config.yaml, then
// BBK_-prefixed environment variables.
type Config struct {
	DataDir      string `mapstructure:"data_dir"`
	AccountsFile string `mapstructure:"accounts_file"`
	LedgerFile   string `mapstructure:"ledger_file"`
	TopN         int    `mapstructure:"top_n"`
	Log          struct {
		Level  string `mapstructure:"level"`
		Pretty bool   `mapstructure:"pretty"`
	} `mapstructure:"log"`
}

func (c *Config) accountsPath() string { return filepath.Join(c.DataDir, c.AccountsFile) }
func (c *Config) ledgerPath() string   { return filepath.Join(c.DataDir, c.LedgerFile) }

// LoadConfig reads the application configuration.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", ".")
	v.SetDefault("accounts_file", "accounts.csv")
	v.SetDefault("ledger_file", "transactions.log")
	v.SetDefault("top_n", 5)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BBK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// newLogger builds the audit logger from the config.
func newLogger(cfg *Config) zerolog.Logger {
	var out zerolog.Logger
	if cfg.Log.Pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		out = zerolog.New(os.Stderr)
	}
	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return out.Level(lvl).With().Timestamp().Logger()
}

// openBank loads the registry and the ledger log and assembles the bank.
// Missing files mean an empty bank, so the very first command just works.
func openBank(cfg *Config) (*bankbook.Bank, error) {
	accounts, err := bankbook.LoadAccounts(cfg.accountsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts from %q: %w", cfg.accountsPath(), err)
	}

	ledger := bankbook.NewLedger()
	f, err := os.Open(cfg.ledgerPath())
	if err == nil {
		ledger, err = bankbook.DecodeLedger(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to load ledger from %q: %w", cfg.ledgerPath(), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open ledger %q: %w", cfg.ledgerPath(), err)
	}

	bank := bankbook.NewBank(accounts, ledger)
	bank.SetLogger(newLogger(cfg))
	return bank, nil
}

// saveBank persists the registry and appends the pending ledger entries.
// The registry write is atomic; the log file is append-only.
func saveBank(cfg *Config, bank *bankbook.Bank) error {
	if err := bankbook.SaveAccounts(cfg.accountsPath(), bank.Accounts()); err != nil {
		return err
	}

	pending := bank.Ledger().Pending()
	if len(pending) == 0 {
		return nil
	}
	f, err := os.OpenFile(cfg.ledgerPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ledger file %q: %w", cfg.ledgerPath(), err)
	}
	defer f.Close()
	if err := bankbook.EncodeEntries(f, pending); err != nil {
		return err
	}
	bank.Ledger().MarkFlushed()
	return nil
}

// rewriteLedger replaces the whole log file, used only after the
// administrative wipe truncated the ledger.
func rewriteLedger(cfg *Config, bank *bankbook.Bank) error {
	f, err := os.Create(cfg.ledgerPath())
	if err != nil {
		return fmt.Errorf("failed to truncate ledger file %q: %w", cfg.ledgerPath(), err)
	}
	defer f.Close()
	if err := bankbook.EncodeEntries(f, bank.Ledger().Entries()); err != nil {
		return err
	}
	bank.Ledger().MarkFlushed()
	return nil
}

// withBank runs fn against a freshly opened bank and, on success, persists
// the registry and the new ledger entries. Any error goes to stderr.
func withBank(fn func(cfg *Config, bank *bankbook.Bank) error) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	bank, err := openBank(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := fn(cfg, bank); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBank(cfg, bank); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown document on the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
