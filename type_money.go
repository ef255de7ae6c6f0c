package fund

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency every amount of the fund is expressed in.
const Currency = "USD"

// Cent is the smallest amount the fund reports, used as the reconciliation tolerance.
var Cent = M(0.01)

// Money represents a monetary value in the fund currency.
//
// It is exact: amounts are never rounded while computing, only when displayed.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M returns a Money for the given value in major units.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// String returns the string representation of the money value, rounded to cents.
func (m Money) String() string {
	cur := *money.New(0, Currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(r Ratio) Money               { return Money{value: m.value.Mul(r.value)} }
func (m Money) Div(r Ratio) Money               { return Money{value: m.value.Div(r.value)} }

// Days returns the dollar-days of this amount held for n days.
func (m Money) Days(n int) DollarDays { return DollarDays{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }

// Prorate returns m*part/total, zero when total is zero.
//
// It divides last, which keeps exact results for rational shares such as 1/3.
func (m Money) Prorate(part, total DollarDays) Money {
	if total.IsZero() {
		return Money{}
	}
	return Money{value: m.value.Mul(part.value).Div(total.value)}
}

// Ratio returns m/n as a ratio.
func (m Money) Ratio(n Money) Ratio { return Ratio{value: m.value.Div(n.value)} }

// NearlyEqual reports whether |m-n| <= tolerance.
func (m Money) NearlyEqual(n, tolerance Money) bool {
	return m.value.Sub(n.value).Abs().LessThanOrEqual(tolerance.value)
}

// Max returns the greatest of m and n.
func (m Money) Max(n Money) Money {
	if m.LessThan(n) {
		return n
	}
	return m
}

// AsFloat returns an approximation of the amount, for display and metrics only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Decimal returns the exact underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }

// MarshalText lets Money be written by text encoders such as yaml.
func (m Money) MarshalText() ([]byte, error) { return m.value.MarshalText() }

func (m *Money) UnmarshalText(b []byte) error { return m.value.UnmarshalText(b) }

// Sum returns the total of a list of amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
