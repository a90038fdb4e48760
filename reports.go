package bankbook

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Reporting queries are pure, derived, read-only views over the registry and
// the ledger. They never mutate state, and they include inactive accounts
// unless stated otherwise.

// CountActive returns the number of active accounts.
func (b *Bank) CountActive() int { return len(b.ListActive()) }

// AverageBalance returns the mean balance over all accounts, zero when the
// registry is empty.
func (b *Bank) AverageBalance() Money {
	if len(b.accounts) == 0 {
		return Money{}
	}
	var total Money
	for _, a := range b.accounts {
		total = total.Add(a.Balance)
	}
	return Money{value: total.value.Div(decimal.NewFromInt(int64(len(b.accounts))))}
}

// TopByBalance returns the n accounts with the highest balances, descending.
// The sort is stable: ties keep registry insertion order.
func (b *Bank) TopByBalance(n int) []Account {
	out := b.Accounts()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Balance.GreaterThan(out[j].Balance)
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Youngest returns the account whose holder has the minimum age. Ties go to
// the first-encountered account in insertion order. The second return is
// false when the registry is empty.
func (b *Bank) Youngest() (Account, bool) {
	return b.extremeByAge(func(candidate, best int) bool { return candidate < best })
}

// Oldest returns the account whose holder has the maximum age, ties resolved
// like Youngest.
func (b *Bank) Oldest() (Account, bool) {
	return b.extremeByAge(func(candidate, best int) bool { return candidate > best })
}

func (b *Bank) extremeByAge(better func(candidate, best int) bool) (Account, bool) {
	if len(b.accounts) == 0 {
		return Account{}, false
	}
	best := b.accounts[0]
	for _, a := range b.accounts[1:] {
		if better(a.Age, best.Age) {
			best = a
		}
	}
	return *best, true
}

// SimpleInterest computes balance × rate% × years against the account's
// current balance, not a snapshot.
func (b *Bank) SimpleInterest(number int, ratePercent, years float64) (Money, error) {
	a, ok := b.index[number]
	if !ok {
		return Money{}, errNotFound(number)
	}
	return a.Balance.MulRate(ratePercent, years), nil
}

// MinimumBalance returns the floor the account must retain after a debit.
func (b *Bank) MinimumBalance(number int) (Money, error) {
	a, ok := b.index[number]
	if !ok {
		return Money{}, errNotFound(number)
	}
	return a.Floor(), nil
}

// SummaryReport is an at-a-glance view of the whole book.
type SummaryReport struct {
	Accounts int // total, active and inactive
	Active   int
	Average  Money
	Top      []Account // highest balances, descending
	Youngest *Account
	Oldest   *Account
}

// Summary assembles the registry-wide report, with the topN highest balances.
func (b *Bank) Summary(topN int) SummaryReport {
	r := SummaryReport{
		Accounts: len(b.accounts),
		Active:   b.CountActive(),
		Average:  b.AverageBalance(),
		Top:      b.TopByBalance(topN),
	}
	if a, ok := b.Youngest(); ok {
		r.Youngest = &a
	}
	if a, ok := b.Oldest(); ok {
		r.Oldest = &a
	}
	return r
}
