// Package renderer formats accounts, ledger history and reports as markdown
// documents, ready to be rendered on a terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/bankbook/bankbook"
)

// Accounts renders a titled table of accounts in the given order.
func Accounts(title string, accounts []bankbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(accounts) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}
	doc.Table(accountTable(accounts))
	return doc.String()
}

// Account renders the detail view of a single account.
func Account(a bankbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account %d", a.Number))
	pin := "not set"
	if a.HasPIN() {
		pin = "set"
	}
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Holder", a.Name},
			{"Age", fmt.Sprintf("%d", a.Age)},
			{"Type", a.Type.String()},
			{"Status", a.Status.String()},
			{"Balance", a.Balance.String()},
			{"Minimum balance", a.Floor().String()},
			{"PIN", pin},
		},
	})
	return doc.String()
}

// History renders the ledger entries of one account in chronological order.
func History(number int, entries []bankbook.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for account %d", number))
	if len(entries) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Header: []string{"Time", "Operation", "Amount", "Balance After"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Time.Format(bankbook.TimestampFormat),
			string(e.Op),
			e.Amount.String(),
			e.Balance.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Summary renders the registry-wide report.
func Summary(r bankbook.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bank Summary")
	rows := [][]string{
		{"Accounts", fmt.Sprintf("%d", r.Accounts)},
		{"Active accounts", fmt.Sprintf("%d", r.Active)},
		{"Average balance", r.Average.String()},
	}
	if r.Youngest != nil {
		rows = append(rows, []string{"Youngest holder", fmt.Sprintf("%s (%d)", r.Youngest.Name, r.Youngest.Age)})
	}
	if r.Oldest != nil {
		rows = append(rows, []string{"Oldest holder", fmt.Sprintf("%s (%d)", r.Oldest.Name, r.Oldest.Age)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})

	if len(r.Top) > 0 {
		doc.H2("Top Accounts by Balance")
		doc.Table(accountTable(r.Top))
	}
	return doc.String()
}

func accountTable(accounts []bankbook.Account) md.TableSet {
	table := md.TableSet{
		Header: []string{"Number", "Holder", "Age", "Type", "Status", "Balance"},
		Rows:   [][]string{},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", a.Number),
			a.Name,
			fmt.Sprintf("%d", a.Age),
			a.Type.String(),
			a.Status.String(),
			a.Balance.String(),
		})
	}
	return table
}
