package bankbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEntry_Format(t *testing.T) {
	var b strings.Builder
	require.NoError(t, EncodeEntry(&b, entryAt("2025-08-29 14:05:12", 1001, OpWithdraw, 2000)))
	assert.Equal(t, "2025-08-29 14:05:12,1001,Withdraw,2000.00,0.00\n", b.String())
}

func TestDecodeLedger(t *testing.T) {
	log := strings.Join([]string{
		"2025-08-29 09:00:00,1001,Create,500.00,500.00",
		"", // blank lines are skipped
		"2025-08-29 10:00:00,1001,Deposit,100.00,600.00",
		"garbage line without commas", // short lines are skipped
		"too,few,fields",
		"2025-08-29 11:00:00,1002,Transfer-Credit,50.00,1050.00",
	}, "\n")

	l, err := DecodeLedger(strings.NewReader(log))
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())

	entries := l.Entries()
	assert.Equal(t, OpCreate, entries[0].Op)
	assert.Equal(t, 1001, entries[0].Account)
	assert.True(t, entries[0].Amount.Equal(M(500)))
	assert.True(t, entries[0].Balance.Equal(M(500)))
	assert.Equal(t, OpTransferCredit, entries[2].Op)

	// a decoded ledger has nothing pending
	assert.Empty(t, l.Pending())
}

func TestDecodeLedger_BadFields(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bad timestamp", "yesterday,1001,Deposit,1.00,1.00"},
		{"bad account", "2025-08-29 09:00:00,abc,Deposit,1.00,1.00"},
		{"bad amount", "2025-08-29 09:00:00,1001,Deposit,one,1.00"},
		{"bad balance", "2025-08-29 09:00:00,1001,Deposit,1.00,one"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.line))
			assert.Error(t, err)
		})
	}
}

func TestLedger_RoundTrip(t *testing.T) {
	l := NewLedger()
	l.Append(entryAt("2025-08-29 09:00:00", 1001, OpCreate, 500))
	l.Append(entryAt("2025-08-29 10:30:45", 1001, OpWithdraw, 123.45))
	l.Append(entryAt("2025-08-30 08:00:00", 1002, OpSetPIN, 0))

	var b strings.Builder
	require.NoError(t, EncodeEntries(&b, l.Entries()))

	back, err := DecodeLedger(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, l.Len(), back.Len())
	for i, want := range l.Entries() {
		got := back.Entries()[i]
		assert.True(t, want.Time.Equal(got.Time), "entry %d time", i)
		assert.Equal(t, want.Account, got.Account)
		assert.Equal(t, want.Op, got.Op)
		assert.True(t, want.Amount.Equal(got.Amount))
		assert.True(t, want.Balance.Equal(got.Balance))
	}
}
