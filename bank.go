package bankbook

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// StartNumber is the first account number ever allocated.
const StartNumber = 1001

// Business limits. Amounts are in the ledger currency.
var (
	// MaxSingleDeposit is the ceiling on any single deposit.
	MaxSingleDeposit = M(100000)
	// DailyDebitLimit caps the sum of withdrawals and transfer debits an
	// account may make on one calendar day.
	DailyDebitLimit = M(50000)
)

// Bank is the aggregate root of the ledger engine: it owns the account
// registry, allocates account numbers, enforces the business rules of every
// monetary operation and appends to the ledger log.
//
// Bank is not safe for concurrent use. The intended deployment is a single
// operator issuing one operation at a time; every operation validates first
// and mutates only on success, so a failed call leaves registry and ledger
// untouched.
type Bank struct {
	accounts []*Account      // insertion order
	index    map[int]*Account
	seq      int // next account number to allocate
	ledger   *Ledger
	log      zerolog.Logger
	now      func() time.Time
}

// NewBank builds a bank over a previously loaded registry and ledger.
// The account-number sequence is re-derived from the registry so that a
// restart never reissues a number present in persisted state.
func NewBank(accounts []Account, ledger *Ledger) *Bank {
	if ledger == nil {
		ledger = NewLedger()
	}
	b := &Bank{
		index:  make(map[int]*Account),
		seq:    StartNumber,
		ledger: ledger,
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for i := range accounts {
		a := accounts[i]
		b.accounts = append(b.accounts, &a)
		b.index[a.Number] = &a
		if a.Number >= b.seq {
			b.seq = a.Number + 1
		}
	}
	return b
}

// SetLogger installs a structured audit logger. The default discards everything.
func (b *Bank) SetLogger(l zerolog.Logger) { b.log = l }

// Ledger returns the bank's ledger log.
func (b *Bank) Ledger() *Ledger { return b.ledger }

// record appends a ledger entry for the current state of an account.
func (b *Bank) record(a *Account, op Op, amount Money) {
	b.ledger.Append(Entry{
		Time:    b.now(),
		Account: a.Number,
		Op:      op,
		Amount:  amount,
		Balance: a.Balance,
	})
	b.log.Info().
		Str("op", string(op)).
		Int("account", a.Number).
		Str("amount", amount.Text()).
		Str("balance", a.Balance.Text()).
		Msg("ledger entry")
}

// Create opens a new account. The initial deposit must meet the type floor,
// and the holder must be at least 18. On success the account is Active, its
// balance equals the initial deposit, and a Create entry is appended.
func (b *Bank) Create(name string, age int, t AccountType, initialDeposit Money, pin *int) (Account, error) {
	if age < 18 {
		return Account{}, errUnderage(age)
	}
	if t != Savings && t != Current {
		return Account{}, errBadType(nil)
	}
	if initialDeposit.LessThan(t.Floor()) {
		return Account{}, errInitialDeposit(t)
	}
	a := &Account{
		Number:  b.seq,
		Name:    name,
		Age:     age,
		Balance: initialDeposit,
		Type:    t,
		Status:  Active,
		PIN:     pin,
	}
	b.seq++
	b.accounts = append(b.accounts, a)
	b.index[a.Number] = a
	b.record(a, OpCreate, initialDeposit)
	return *a, nil
}

// Find returns a copy of the account with the given number.
func (b *Bank) Find(number int) (Account, error) {
	a, ok := b.index[number]
	if !ok {
		return Account{}, errNotFound(number)
	}
	return *a, nil
}

// FindByName returns copies of the accounts whose holder name contains the
// query, compared case-insensitively after trimming, in registry insertion order.
func (b *Bank) FindByName(query string) []Account {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Account
	for _, a := range b.accounts {
		if strings.Contains(strings.ToLower(strings.TrimSpace(a.Name)), q) {
			out = append(out, *a)
		}
	}
	return out
}

// Accounts returns copies of all accounts in insertion order.
func (b *Bank) Accounts() []Account {
	out := make([]Account, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, *a)
	}
	return out
}

// ListActive returns the active accounts in insertion order.
func (b *Bank) ListActive() []Account { return b.listByStatus(Active) }

// ListInactive returns the inactive accounts in insertion order.
func (b *Bank) ListInactive() []Account { return b.listByStatus(Inactive) }

func (b *Bank) listByStatus(s Status) []Account {
	var out []Account
	for _, a := range b.accounts {
		if a.Status == s {
			out = append(out, *a)
		}
	}
	return out
}

// Deposit credits an active account and returns the new balance.
// A single deposit may not exceed MaxSingleDeposit, whatever the resulting balance.
func (b *Bank) Deposit(number int, amount Money) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errInvalidAmount(amount)
	}
	if amount.GreaterThan(MaxSingleDeposit) {
		return Money{}, errDepositCeiling(amount)
	}
	a, ok := b.index[number]
	if !ok {
		return Money{}, errNotFound(number)
	}
	if a.Status != Active {
		return Money{}, errInactive(number)
	}
	a.Balance = a.Balance.Add(amount)
	b.record(a, OpDeposit, amount)
	return a.Balance, nil
}

// Withdraw debits an active account and returns the new balance.
//
// The amount plus all Withdraw and Transfer-Debit entries recorded for the
// account on the current calendar day may not exceed DailyDebitLimit, and the
// remaining balance may not fall under the type floor. The floor comparison
// is strict on the remainder: an account sitting exactly at its floor cannot
// withdraw any positive amount.
func (b *Bank) Withdraw(number int, amount Money) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errInvalidAmount(amount)
	}
	a, ok := b.index[number]
	if !ok {
		return Money{}, errNotFound(number)
	}
	if a.Status != Active {
		return Money{}, errInactive(number)
	}
	today := b.ledger.SumDayDebits(number, DayOf(b.now()))
	if today.Add(amount).GreaterThan(DailyDebitLimit) {
		return Money{}, errDailyLimit(number, today)
	}
	if a.Balance.Sub(amount).LessThan(a.Floor()) {
		return Money{}, errMinimumBalance(a)
	}
	a.Balance = a.Balance.Sub(amount)
	b.record(a, OpWithdraw, amount)
	return a.Balance, nil
}

// Transfer moves an amount between two active accounts as one unit and
// returns the two new balances, sender first.
//
// The sender is subject to the same floor and daily-limit rules as Withdraw;
// the receiver has no limit check. The total of the two balances is conserved.
// A Transfer-Debit entry for the sender is appended before the Transfer-Credit
// entry for the receiver.
func (b *Bank) Transfer(from, to int, amount Money) (Money, Money, error) {
	if !amount.IsPositive() {
		return Money{}, Money{}, errInvalidAmount(amount)
	}
	src, ok := b.index[from]
	if !ok {
		return Money{}, Money{}, errNotFound(from)
	}
	dst, ok := b.index[to]
	if !ok {
		return Money{}, Money{}, errNotFound(to)
	}
	if src.Status != Active {
		return Money{}, Money{}, errInactive(from)
	}
	if dst.Status != Active {
		return Money{}, Money{}, errInactive(to)
	}
	if src.Balance.Sub(amount).LessThan(src.Floor()) {
		return Money{}, Money{}, errMinimumBalance(src)
	}
	today := b.ledger.SumDayDebits(from, DayOf(b.now()))
	if today.Add(amount).GreaterThan(DailyDebitLimit) {
		return Money{}, Money{}, errDailyLimit(from, today)
	}
	src.Balance = src.Balance.Sub(amount)
	dst.Balance = dst.Balance.Add(amount)
	b.record(src, OpTransferDebit, amount)
	b.record(dst, OpTransferCredit, amount)
	return src.Balance, dst.Balance, nil
}

// Close marks an active account inactive. The balance is retained.
func (b *Bank) Close(number int) (Account, error) {
	a, ok := b.index[number]
	if !ok {
		return Account{}, errNotFound(number)
	}
	if a.Status != Active {
		return Account{}, errAlreadyInactive(number)
	}
	a.Status = Inactive
	b.record(a, OpClose, Money{})
	return *a, nil
}

// Reopen marks an inactive account active again, balance and type unchanged.
func (b *Bank) Reopen(number int) (Account, error) {
	a, ok := b.index[number]
	if !ok {
		return Account{}, errNotFound(number)
	}
	if a.Status == Active {
		return Account{}, errAlreadyActive(number)
	}
	a.Status = Active
	b.record(a, OpReopen, Money{})
	return *a, nil
}

// Rename changes the holder name. The age recorded at creation is not
// revalidated, and no emptiness check is enforced on the new name.
func (b *Bank) Rename(number int, newName string) (Account, error) {
	a, ok := b.index[number]
	if !ok {
		return Account{}, errNotFound(number)
	}
	a.Name = newName
	b.record(a, OpRename, Money{})
	return *a, nil
}

// SetPIN stores a 4-digit PIN on the account. The PIN is never verified by
// any operation of this engine.
func (b *Bank) SetPIN(number int, pin int) error {
	a, ok := b.index[number]
	if !ok {
		return errNotFound(number)
	}
	if pin < 1000 || pin > 9999 {
		return errInvalidPIN(pin)
	}
	p := pin
	a.PIN = &p
	b.record(a, OpSetPIN, Money{})
	return nil
}

// DeleteAll irreversibly clears the registry and truncates the ledger as one
// administrative action. It refuses to run without explicit confirmation.
// The number sequence is not reset, so numbers are still never reused within
// the session.
func (b *Bank) DeleteAll(confirm bool) error {
	if !confirm {
		return errAdminConfirmation()
	}
	b.accounts = b.accounts[:0]
	b.index = make(map[int]*Account)
	b.ledger.Truncate()
	b.log.Warn().Msg("all accounts deleted and ledger truncated")
	return nil
}

// History returns the ledger entries for an account in chronological order.
// It works for numbers no longer present in the registry: entries are never
// purged when an account goes away.
func (b *Bank) History(number int) []Entry {
	return b.ledger.EntriesFor(number)
}
