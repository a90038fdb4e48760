package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/bankbook/bankbook"
)

func account(number int, name string, balance float64) bankbook.Account {
	return bankbook.Account{
		Number:  number,
		Name:    name,
		Age:     30,
		Balance: bankbook.M(balance),
		Type:    bankbook.Savings,
		Status:  bankbook.Active,
	}
}

func TestAccounts(t *testing.T) {
	doc := Accounts("Active Accounts", []bankbook.Account{account(1001, "Asha Rao", 500)})
	for _, want := range []string{"# Active Accounts", "1001", "Asha Rao", "Savings", "Active"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestAccounts_Empty(t *testing.T) {
	doc := Accounts("Accounts", nil)
	if !strings.Contains(doc, "No accounts.") {
		t.Errorf("empty registry should say so:\n%s", doc)
	}
}

func TestAccount_Detail(t *testing.T) {
	a := account(1001, "Asha", 500)
	doc := Account(a)
	for _, want := range []string{"# Account 1001", "Minimum balance", "not set"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestHistory(t *testing.T) {
	when, _ := time.Parse(bankbook.TimestampFormat, "2025-08-29 10:00:00")
	entries := []bankbook.Entry{{
		Time:    when,
		Account: 1001,
		Op:      bankbook.OpDeposit,
		Amount:  bankbook.M(100),
		Balance: bankbook.M(600),
	}}
	doc := History(1001, entries)
	for _, want := range []string{"# History for account 1001", "2025-08-29 10:00:00", "Deposit"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	if !strings.Contains(History(1002, nil), "No transactions recorded.") {
		t.Error("empty history should say so")
	}
}

func TestSummary(t *testing.T) {
	young := account(1001, "Young", 500)
	old := account(1002, "Old", 900)
	old.Age = 70
	r := bankbook.SummaryReport{
		Accounts: 2,
		Active:   2,
		Average:  bankbook.M(700),
		Top:      []bankbook.Account{old, young},
		Youngest: &young,
		Oldest:   &old,
	}
	doc := Summary(r)
	for _, want := range []string{"# Bank Summary", "Top Accounts by Balance", "Youngest holder", "Old (70)"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}
