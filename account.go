package bankbook

import (
	"fmt"
	"strings"
)

// AccountType defines the kind of account and the minimum balance it must retain.
type AccountType int

const (
	// Savings accounts must keep a 500 minimum balance.
	Savings AccountType = iota
	// Current accounts must keep a 1000 minimum balance.
	Current
)

func (t AccountType) String() string {
	switch t {
	case Savings:
		return "Savings"
	case Current:
		return "Current"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType, ignoring case.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return Savings, nil
	case "current":
		return Current, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}

// Floor returns the minimum balance an account of this type must retain
// after a withdrawal or transfer debit.
func (t AccountType) Floor() Money {
	if t == Current {
		return M(1000)
	}
	return M(500)
}

// Status is the lifecycle state of an account. An inactive account keeps its
// balance and stays visible to reporting; it is only excluded from deposit,
// withdrawal and transfer eligibility.
type Status int

const (
	Active Status = iota
	Inactive
)

func (s Status) String() string {
	if s == Inactive {
		return "Inactive"
	}
	return "Active"
}

// ParseStatus parses a string into a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return Active, nil
	case "inactive":
		return Inactive, nil
	default:
		return 0, fmt.Errorf("unknown account status: %q", s)
	}
}

// Account represents one customer account.
//
// Number is unique, positive and monotonically allocated; it is never reused
// within a session even after the account is removed. Age is validated at
// creation and immutable afterwards. The PIN is write-only data: no operation
// in this engine ever verifies it.
type Account struct {
	Number  int
	Name    string
	Age     int
	Balance Money
	Type    AccountType
	Status  Status
	PIN     *int
}

// HasPIN reports whether a PIN has been set on the account.
func (a Account) HasPIN() bool { return a.PIN != nil }

// Floor returns the minimum balance this account must retain after a debit.
func (a Account) Floor() Money { return a.Type.Floor() }

func (a Account) String() string {
	return fmt.Sprintf("#%d %s (%s, %s) %s", a.Number, a.Name, a.Type, a.Status, a.Balance)
}
