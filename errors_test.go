package bankbook

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := errNotFound(1001)
	assert.Equal(t, "not found: account 1001 not found", err.Error())

	wrapped := errBadType(fmt.Errorf("unknown account type \"Checking\""))
	assert.Contains(t, wrapped.Error(), "validation:")
	assert.Contains(t, wrapped.Error(), "Checking")
}

func TestError_IsByKind(t *testing.T) {
	err := errInactive(1001)
	assert.True(t, errors.Is(err, &Error{Kind: KindInactive}))
	assert.False(t, errors.Is(err, &Error{Kind: KindNotFound}))
}

func TestError_UnwrapCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := errBadType(cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindDailyLimit, KindOf(errDailyLimit(1001, M(50000))))
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("outer: %w", errUnderage(16))))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}
