package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Pennies returns n pennies.
func Pennies(n int64) Amount {
	return NewAmount(GBP, n)
}

// Pence is an alias of [Pennies].
func Pence(n int64) Amount {
	return Pennies(n)
}

// Pounds returns n whole pounds.
// Pounds panics if the result does not fit into int64 pennies.
func Pounds(n int64) Amount {
	return mustMajor(GBP, n)
}

// PoundsFloat returns f pounds rounded to the nearest penny using
// rounding half away from zero.
// PoundsFloat panics if f is NaN, infinite or too large.
func PoundsFloat(f float64) Amount {
	return mustFloat(GBP, f)
}

// ParsePounds converts a string, representing pounds, to an amount.
// See also constructor [NewAmountFromMajor].
func ParsePounds(s string) (Amount, error) {
	return NewAmountFromMajor(GBP, s)
}

// Cents returns n cents.
func Cents(n int64) Amount {
	return NewAmount(USD, n)
}

// Dollars returns n whole dollars.
// Dollars panics if the result does not fit into int64 cents.
func Dollars(n int64) Amount {
	return mustMajor(USD, n)
}

// DollarsFloat returns f dollars rounded to the nearest cent using
// rounding half away from zero.
// DollarsFloat panics if f is NaN, infinite or too large.
func DollarsFloat(f float64) Amount {
	return mustFloat(USD, f)
}

// ParseDollars converts a string, representing dollars, to an amount.
// See also constructor [NewAmountFromMajor].
func ParseDollars(s string) (Amount, error) {
	return NewAmountFromMajor(USD, s)
}

// NewChips returns n chips.
func NewChips(n int64) Amount {
	return NewAmount(Chips, n)
}

// NewTickets returns n tickets.
func NewTickets(n int64) Amount {
	return NewAmount(Tickets, n)
}

// ToPennies converts pounds to pennies, rounding half away from zero.
// Values beyond the int64 range saturate.
func ToPennies(pounds float64) int64 {
	return toUnits(pounds, GBP.Precision())
}

// ToCents converts dollars to cents, rounding half away from zero.
// Values beyond the int64 range saturate.
func ToCents(dollars float64) int64 {
	return toUnits(dollars, USD.Precision())
}

// ToPounds converts pennies to pounds.
func ToPounds(pennies int64) float64 {
	return float64(pennies) / float64(GBP.Precision())
}

// ToDollars converts cents to dollars.
func ToDollars(cents int64) float64 {
	return float64(cents) / float64(USD.Precision())
}

// Percent returns n/100 as a decimal, suitable for [Amount.Mul].
func Percent(n int64) decimal.Decimal {
	return decimal.MustNew(n, 2)
}

func toUnits(major float64, prec int64) int64 {
	f := math.Round(major * float64(prec))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func mustMajor(curr Currency, n int64) Amount {
	a, err := NewAmount(curr, n).MulInt(curr.Precision())
	if err != nil {
		panic(fmt.Sprintf("converting %v major units of %v: %v", n, curr, err))
	}
	return a
}

func mustFloat(curr Currency, f float64) Amount {
	a, err := NewAmountFromFloat64(curr, f)
	if err != nil {
		panic(fmt.Sprintf("NewAmountFromFloat64(%v, %v) failed: %v", curr, f, err))
	}
	return a
}
