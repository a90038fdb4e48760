package bankbook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAccounts_EmptyRegistryKeepsHeader(t *testing.T) {
	var b strings.Builder
	require.NoError(t, EncodeAccounts(&b, nil))
	assert.Equal(t, "account_number,name,age,balance,type,status,pin\n", b.String())
}

func TestAccounts_RoundTrip(t *testing.T) {
	pin := 4321
	accounts := []Account{
		{Number: 1001, Name: "Asha Rao", Age: 30, Balance: M(1234.5), Type: Savings, Status: Active, PIN: &pin},
		{Number: 1002, Name: "Vikram Shah", Age: 62, Balance: M(100000), Type: Current, Status: Inactive},
	}

	var b strings.Builder
	require.NoError(t, EncodeAccounts(&b, accounts))

	back, err := DecodeAccounts(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, back, 2)

	assert.Equal(t, 1001, back[0].Number)
	assert.Equal(t, "Asha Rao", back[0].Name)
	assert.Equal(t, 30, back[0].Age)
	assert.True(t, back[0].Balance.Equal(M(1234.5)))
	assert.Equal(t, Savings, back[0].Type)
	assert.Equal(t, Active, back[0].Status)
	require.True(t, back[0].HasPIN())
	assert.Equal(t, 4321, *back[0].PIN)

	assert.Equal(t, Current, back[1].Type)
	assert.Equal(t, Inactive, back[1].Status)
	assert.False(t, back[1].HasPIN())
}

func TestDecodeAccounts_ColumnOrderIndependent(t *testing.T) {
	csv := "name,pin,account_number,age,balance\n" +
		"Asha,,1001,30,500.00\n"

	back, err := DecodeAccounts(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 1001, back[0].Number)
	assert.Equal(t, "Asha", back[0].Name)
}

func TestDecodeAccounts_Tolerance(t *testing.T) {
	// Missing type and status columns default to Savings/Active; a pin of
	// "None" or "" means no PIN; rows with an empty account_number are skipped.
	csv := strings.Join([]string{
		"account_number,name,age,balance,pin",
		"1001,Asha,30,500.00,None",
		",Ghost,99,0.00,",
		"1002,Vikram,40,2000.00,",
	}, "\n")

	back, err := DecodeAccounts(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, back, 2)

	assert.Equal(t, Savings, back[0].Type)
	assert.Equal(t, Active, back[0].Status)
	assert.False(t, back[0].HasPIN())
	assert.Equal(t, 1002, back[1].Number)
}

func TestSaveLoadAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.csv")

	accounts := []Account{{Number: 1001, Name: "Asha", Age: 30, Balance: M(500), Type: Savings, Status: Active}}
	require.NoError(t, SaveAccounts(path, accounts))

	back, err := LoadAccounts(path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 1001, back[0].Number)

	// a missing file is an empty registry
	missing, err := LoadAccounts(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}
