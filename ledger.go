package bankbook

import (
	"strings"
	"time"
)

// Op is the kind of operation a ledger entry records.
//
// Ops are persisted as their literal names. Decoding keeps unknown names as-is
// rather than rejecting the line, so a log written by a newer version still
// loads.
type Op string

const (
	OpCreate         Op = "Create"
	OpDeposit        Op = "Deposit"
	OpWithdraw       Op = "Withdraw"
	OpClose          Op = "Close"
	OpReopen         Op = "Reopen"
	OpRename         Op = "Rename"
	OpTransferDebit  Op = "Transfer-Debit"
	OpTransferCredit Op = "Transfer-Credit"
	OpSetPIN         Op = "Set-PIN"
)

// IsDebit reports whether the operation counts toward the daily withdrawal
// cap. The match is case-insensitive to accept logs written by hand.
func (o Op) IsDebit() bool {
	return strings.EqualFold(string(o), string(OpWithdraw)) ||
		strings.EqualFold(string(o), string(OpTransferDebit))
}

// Entry is the immutable record of one state-changing operation.
// Entries reference accounts by number only; an account may later be removed
// from the registry without its entries being purged.
type Entry struct {
	Time    time.Time // second precision
	Account int
	Op      Op
	Amount  Money // zero for non-monetary ops
	Balance Money // balance after the operation
}

// Day returns the calendar day the entry was recorded on.
func (e Entry) Day() Day { return DayOf(e.Time) }

// Ledger is the append-only log of every state-changing operation.
//
// Entries are kept in append order, which is chronological: there is exactly
// one writer and no operation backdates entries. Prior entries are never
// mutated, reordered or individually removed; the only destructive operation
// is Truncate, reserved for the administrative full wipe.
type Ledger struct {
	entries []Entry
	flushed int // number of leading entries already persisted
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Append records an entry at the end of the log.
func (l *Ledger) Append(e Entry) {
	e.Time = e.Time.Truncate(time.Second)
	l.entries = append(l.entries, e)
}

// Len returns the total number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns a copy of all entries in log order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// EntriesFor returns the entries referencing an account, in log order.
func (l *Ledger) EntriesFor(number int) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Account == number {
			out = append(out, e)
		}
	}
	return out
}

// SumDayDebits totals the Withdraw and Transfer-Debit amounts recorded for an
// account on the given calendar day. It always scans the full log rather than
// keeping a running total, so there is no cache to invalidate at day rollover.
func (l *Ledger) SumDayDebits(number int, day Day) Money {
	var total Money
	for _, e := range l.entries {
		if e.Account == number && e.Op.IsDebit() && e.Day() == day {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Truncate removes all entries. It exists solely for the administrative full
// wipe that clears the registry and the log together.
func (l *Ledger) Truncate() {
	l.entries = l.entries[:0]
	l.flushed = 0
}

// Pending returns the entries appended since the last MarkFlushed (or since
// decoding), in log order. The CLI uses it to append only new lines to the
// on-disk log file.
func (l *Ledger) Pending() []Entry {
	out := make([]Entry, len(l.entries)-l.flushed)
	copy(out, l.entries[l.flushed:])
	return out
}

// MarkFlushed records that all current entries have been persisted.
func (l *Ledger) MarkFlushed() { l.flushed = len(l.entries) }
