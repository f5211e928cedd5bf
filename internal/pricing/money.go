package pricing

import "github.com/shopspring/decimal"

// Cents is a monetary amount in integer cents. All cart arithmetic
// accumulates in cents so repeated additions cannot drift the way raw
// float64 sums do; conversion to a display decimal happens only at the
// formatting boundary.
type Cents int64

// ToCents converts a decimal currency amount to cents, rounding half-up
// to two decimal places first.
func ToCents(amount float64) Cents {
	return Cents(decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart())
}

// Float64 returns the amount as a display decimal.
func (c Cents) Float64() float64 {
	f, _ := decimal.New(int64(c), -2).Float64()
	return f
}

// String formats the amount with exactly two decimal places.
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// roundToCents rounds a decimal currency amount half-up to whole cents.
func roundToCents(d decimal.Decimal) Cents {
	return Cents(d.Round(2).Shift(2).IntPart())
}
