package bankbook

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure. Every operation of the engine reports
// failures as a *Error carrying one of these kinds; callers branch on the
// kind, never on message text. All failures are local and recoverable, and
// an operation that fails leaves the registry and the ledger untouched.
type Kind int

const (
	// KindValidation covers malformed or out-of-range input: bad age, bad
	// account type, bad PIN, non-positive amounts, the single-deposit ceiling.
	KindValidation Kind = iota + 1
	// KindNotFound means the account number could not be resolved.
	KindNotFound
	// KindInactive means the operation requires an Active account.
	KindInactive
	// KindAlreadyActive and KindAlreadyInactive flag redundant state transitions.
	KindAlreadyActive
	KindAlreadyInactive
	// KindMinimumBalance means a debit would take the balance under the type floor.
	KindMinimumBalance
	// KindDailyLimit means a debit would exceed the calendar-day withdrawal cap.
	KindDailyLimit
	// KindAdminConfirmation means a bulk administrative action lacked explicit confirmation.
	KindAdminConfirmation
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindInactive:
		return "inactive account"
	case KindAlreadyActive:
		return "already active"
	case KindAlreadyInactive:
		return "already inactive"
	case KindMinimumBalance:
		return "minimum balance violation"
	case KindDailyLimit:
		return "daily limit exceeded"
	case KindAdminConfirmation:
		return "admin confirmation required"
	default:
		return "unknown"
	}
}

// Error is a structured business error: a kind plus a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so callers can test
// errors.Is(err, &Error{Kind: KindNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a business error, or 0 for other errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Constructors for the enumerable failure conditions.

func errUnderage(age int) *Error {
	return newError(KindValidation, "age %d is below 18, the minimum to open an account", age)
}

func errBadType(err error) *Error {
	return &Error{Kind: KindValidation, Message: "account type must be Savings or Current", Err: err}
}

func errInitialDeposit(t AccountType) *Error {
	return newError(KindValidation, "%s account requires at least %s initial deposit", t, t.Floor())
}

func errInvalidAmount(amount Money) *Error {
	return newError(KindValidation, "amount must be positive, got %s", amount)
}

func errDepositCeiling(amount Money) *Error {
	return newError(KindValidation, "cannot deposit more than %s in a single deposit, got %s", MaxSingleDeposit, amount)
}

func errInvalidPIN(pin int) *Error {
	return newError(KindValidation, "PIN must be a 4 digit number, got %d", pin)
}

func errNotFound(number int) *Error {
	return newError(KindNotFound, "account %d not found", number)
}

func errInactive(number int) *Error {
	return newError(KindInactive, "account %d is inactive", number)
}

func errAlreadyActive(number int) *Error {
	return newError(KindAlreadyActive, "account %d is already active", number)
}

func errAlreadyInactive(number int) *Error {
	return newError(KindAlreadyInactive, "account %d is already inactive", number)
}

func errMinimumBalance(a *Account) *Error {
	return newError(KindMinimumBalance, "account %d must maintain a minimum balance of %s", a.Number, a.Floor())
}

func errDailyLimit(number int, already Money) *Error {
	return newError(KindDailyLimit, "daily withdrawal limit of %s exceeded for account %d, already withdrawn %s today", DailyDebitLimit, number, already)
}

func errAdminConfirmation() *Error {
	return newError(KindAdminConfirmation, "admin confirmation required to delete all accounts")
}
