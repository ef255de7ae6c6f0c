package fund

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
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
		panic("unsupported type")
	}
}

// Ratio is an exact fraction: a participant share, a fee rate, a split percentage.
type Ratio struct {
	value decimal.Decimal
}

// R returns the ratio for value (0.2 for 20%).
func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Ratio {
	return Ratio{value: newDecimal(value)}
}

var one = R(1)

func (r Ratio) Equal(p Ratio) bool       { return r.value.Equal(p.value) }
func (r Ratio) Add(p Ratio) Ratio        { return Ratio{value: r.value.Add(p.value)} }
func (r Ratio) Sub(p Ratio) Ratio        { return Ratio{value: r.value.Sub(p.value)} }
func (r Ratio) Mul(p Ratio) Ratio        { return Ratio{value: r.value.Mul(p.value)} }
func (r Ratio) LessThan(p Ratio) bool    { return r.value.LessThan(p.value) }
func (r Ratio) GreaterThan(p Ratio) bool { return r.value.GreaterThan(p.value) }
func (r Ratio) IsZero() bool             { return r.value.IsZero() }
func (r Ratio) IsNegative() bool         { return r.value.IsNegative() }
func (r Ratio) IsPositive() bool         { return r.value.IsPositive() }

// Complement returns 1-r.
func (r Ratio) Complement() Ratio { return one.Sub(r) }

// NearlyEqual reports whether |r-p| <= tolerance.
func (r Ratio) NearlyEqual(p Ratio, tolerance float64) bool {
	return r.value.Sub(p.value).Abs().LessThanOrEqual(decimal.NewFromFloat(tolerance))
}

// Between reports whether lo <= r <= hi.
func (r Ratio) Between(lo, hi float64) bool {
	return r.value.GreaterThanOrEqual(decimal.NewFromFloat(lo)) && r.value.LessThanOrEqual(decimal.NewFromFloat(hi))
}

// AsFloat returns an approximation of the ratio, for display and metrics only.
func (r Ratio) AsFloat() float64 { return r.value.InexactFloat64() }

// Decimal returns the exact underlying value.
func (r Ratio) Decimal() decimal.Decimal { return r.value }

// String renders the ratio as a percentage.
func (r Ratio) String() string { return r.value.Shift(2).StringFixed(2) + "%" }

func (r Ratio) MarshalJSON() ([]byte, error) { return r.value.MarshalJSON() }

func (r *Ratio) UnmarshalJSON(b []byte) error { return r.value.UnmarshalJSON(b) }

// MarshalText lets yaml write a ratio as a plain decimal.
func (r Ratio) MarshalText() ([]byte, error) { return r.value.MarshalText() }

func (r *Ratio) UnmarshalText(b []byte) error { return r.value.UnmarshalText(b) }

// DollarDays is a time-weighted capital exposure: an amount multiplied by the
// number of days it stayed in the window.
type DollarDays struct {
	value decimal.Decimal
}

func (d DollarDays) Add(e DollarDays) DollarDays { return DollarDays{value: d.value.Add(e.value)} }
func (d DollarDays) Sub(e DollarDays) DollarDays { return DollarDays{value: d.value.Sub(e.value)} }
func (d DollarDays) Equal(e DollarDays) bool     { return d.value.Equal(e.value) }
func (d DollarDays) IsZero() bool                { return d.value.IsZero() }
func (d DollarDays) IsPositive() bool            { return d.value.IsPositive() }
func (d DollarDays) AsFloat() float64            { return d.value.InexactFloat64() }
func (d DollarDays) String() string              { return d.value.StringFixed(2) }

// Share returns d/total. It is zero when total is zero.
func (d DollarDays) Share(total DollarDays) Ratio {
	if total.IsZero() {
		return Ratio{}
	}
	return Ratio{value: d.value.Div(total.value)}
}

// NearlyEqual reports whether |d-e| <= tolerance.
func (d DollarDays) NearlyEqual(e DollarDays, tolerance float64) bool {
	return d.value.Sub(e.value).Abs().LessThanOrEqual(decimal.NewFromFloat(tolerance))
}

func (d DollarDays) MarshalJSON() ([]byte, error) { return d.value.MarshalJSON() }

func (d *DollarDays) UnmarshalJSON(b []byte) error { return d.value.UnmarshalJSON(b) }
