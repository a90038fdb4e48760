package bankbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency all balances and amounts are kept in.
// The engine itself performs no conversion; it is only used for display.
const Currency = "INR"

// Money represents a monetary value with exact decimal arithmetic.
//
// The zero value is zero money. Amounts are persisted and displayed with
// exactly two fraction digits.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported numeric type %T", value))
	}
}

// ParseMoney parses a decimal text amount such as "1234.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String formats the amount with the currency symbol, e.g. "₹1,500.00".
func (m Money) String() string {
	cur := money.GetCurrency(Currency)
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Text returns the plain decimal representation with exactly two fraction
// digits, the form used in persisted records.
func (m Money) Text() string { return m.value.StringFixed(2) }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulRate returns balance × rate% × years, the simple-interest product.
func (m Money) MulRate(ratePercent, years float64) Money {
	factor := decimal.NewFromFloat(ratePercent).Div(decimal.NewFromInt(100)).Mul(decimal.NewFromFloat(years))
	return Money{value: m.value.Mul(factor)}
}
