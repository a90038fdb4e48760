package bankbook

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// The log file holds one entry per line:
//
//	2025-08-30 14:05:12,1001,Withdraw,2000.00,8000.00
//
// Fields are timestamp, account number, operation, amount, balance after.
// No field is escaped; none of them may contain a comma.

// EncodeEntry writes one entry as a log line.
func EncodeEntry(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "%s,%d,%s,%s,%s\n",
		e.Time.Format(TimestampFormat), e.Account, e.Op, e.Amount.Text(), e.Balance.Text())
	if err != nil {
		return fmt.Errorf("failed to write ledger entry: %w", err)
	}
	return nil
}

// EncodeEntries writes entries in order, one line each.
func EncodeEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a log line by line and returns the reconstructed ledger.
// Blank lines and lines with fewer than five comma-separated fields are
// skipped. The decoded ledger is marked flushed: only entries appended
// afterwards are pending.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, ok, err := decodeEntry(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue // short line, skip
		}
		ledger.Append(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	ledger.MarkFlushed()
	return ledger, nil
}

func decodeEntry(line string) (Entry, bool, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return Entry{}, false, nil
	}
	ts, err := time.Parse(TimestampFormat, parts[0])
	if err != nil {
		return Entry{}, false, fmt.Errorf("invalid timestamp in ledger line %q: %w", line, err)
	}
	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return Entry{}, false, fmt.Errorf("invalid account number in ledger line %q: %w", line, err)
	}
	amount, err := ParseMoney(parts[3])
	if err != nil {
		return Entry{}, false, fmt.Errorf("invalid amount in ledger line %q: %w", line, err)
	}
	balance, err := ParseMoney(parts[4])
	if err != nil {
		return Entry{}, false, fmt.Errorf("invalid balance in ledger line %q: %w", line, err)
	}
	return Entry{
		Time:    ts,
		Account: number,
		Op:      Op(parts[2]),
		Amount:  amount,
		Balance: balance,
	}, true, nil
}
