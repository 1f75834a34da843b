// Package decimal rounds currency amounts through shopspring/decimal so advice
// and reports never show binary floating point artifacts.
package decimal

import (
	"github.com/shopspring/decimal"
)

// Money is a currency amount. The projection engine works in float64; values
// cross into Money when they are shown to a household.
type Money struct {
	decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Round rounds half away from zero to cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Float64 returns the cent-rounded amount.
func (m Money) Float64() float64 {
	return m.Round().InexactFloat64()
}

// Scale multiplies by a share, e.g. 0.1 for a ten percent cut.
func (m Money) Scale(share float64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromFloat(share))}
}

func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a currency sign.
func (m Money) Format() string {
	return "$" + m.String()
}

// Cents rounds v to cents.
func Cents(v float64) float64 {
	return NewMoney(v).Float64()
}

// Whole rounds v to whole currency units.
func Whole(v float64) float64 {
	return NewMoney(v).Decimal.Round(0).InexactFloat64()
}
