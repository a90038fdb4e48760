package bankbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReports_AverageBalance(t *testing.T) {
	b := testBank()
	assert.True(t, b.AverageBalance().IsZero(), "empty registry averages to zero")

	_, err := b.Create("A", 30, Savings, M(1000), nil)
	require.NoError(t, err)
	_, err = b.Create("B", 40, Current, M(2000), nil)
	require.NoError(t, err)
	closed, err := b.Create("C", 50, Savings, M(3000), nil)
	require.NoError(t, err)
	_, err = b.Close(closed.Number)
	require.NoError(t, err)

	// inactive accounts still count toward the average
	assert.True(t, b.AverageBalance().Equal(M(2000)))
}

func TestReports_TopByBalance(t *testing.T) {
	b := testBank()
	a1, _ := b.Create("First", 30, Savings, M(1000), nil)
	a2, _ := b.Create("Second", 30, Savings, M(5000), nil)
	a3, _ := b.Create("Third", 30, Savings, M(1000), nil)

	top := b.TopByBalance(2)
	require.Len(t, top, 2)
	assert.Equal(t, a2.Number, top[0].Number)
	// tie between First and Third: insertion order wins
	assert.Equal(t, a1.Number, top[1].Number)

	full := b.TopByBalance(10)
	require.Len(t, full, 3)
	assert.Equal(t, a3.Number, full[2].Number)
}

func TestReports_AgeExtremes(t *testing.T) {
	b := testBank()
	if _, ok := b.Youngest(); ok {
		t.Fatal("Youngest on an empty registry")
	}

	first, _ := b.Create("First", 25, Savings, M(500), nil)
	_, err := b.Create("Older", 60, Savings, M(500), nil)
	require.NoError(t, err)
	_, err = b.Create("AlsoYoung", 25, Savings, M(500), nil)
	require.NoError(t, err)

	young, ok := b.Youngest()
	require.True(t, ok)
	// tie on age: the first-encountered account wins
	assert.Equal(t, first.Number, young.Number)

	old, ok := b.Oldest()
	require.True(t, ok)
	assert.Equal(t, "Older", old.Name)
}

func TestReports_SimpleInterest(t *testing.T) {
	b := testBank()
	a, err := b.Create("A", 30, Savings, M(10000), nil)
	require.NoError(t, err)

	got, err := b.SimpleInterest(a.Number, 5, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(M(1000)))

	// interest follows the current balance, not a snapshot
	_, err = b.Deposit(a.Number, M(10000))
	require.NoError(t, err)
	got, err = b.SimpleInterest(a.Number, 5, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(M(2000)))

	_, err = b.SimpleInterest(9999, 5, 2)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReports_MinimumBalance(t *testing.T) {
	b := testBank()
	s, _ := b.Create("S", 30, Savings, M(500), nil)
	c, _ := b.Create("C", 30, Current, M(1000), nil)

	min, err := b.MinimumBalance(s.Number)
	require.NoError(t, err)
	assert.True(t, min.Equal(M(500)))
	min, err = b.MinimumBalance(c.Number)
	require.NoError(t, err)
	assert.True(t, min.Equal(M(1000)))

	_, err = b.MinimumBalance(9999)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReports_Summary(t *testing.T) {
	b := testBank()

	empty := b.Summary(5)
	assert.Zero(t, empty.Accounts)
	assert.Nil(t, empty.Youngest)
	assert.Nil(t, empty.Oldest)

	_, err := b.Create("A", 25, Savings, M(1000), nil)
	require.NoError(t, err)
	closed, err := b.Create("B", 70, Current, M(9000), nil)
	require.NoError(t, err)
	_, err = b.Close(closed.Number)
	require.NoError(t, err)

	r := b.Summary(1)
	assert.Equal(t, 2, r.Accounts)
	assert.Equal(t, 1, r.Active)
	assert.True(t, r.Average.Equal(M(5000)))
	require.Len(t, r.Top, 1)
	assert.Equal(t, closed.Number, r.Top[0].Number, "inactive accounts still report")
	require.NotNil(t, r.Youngest)
	assert.Equal(t, 25, r.Youngest.Age)
	require.NotNil(t, r.Oldest)
	assert.Equal(t, 70, r.Oldest.Age)
}
