package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch is returned when two amounts are combined or
	// compared but are denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidAmount is returned when a major amount cannot be parsed as a number.
	ErrInvalidAmount = errors.New("invalid amount format")
	// ErrDivisionByZero is returned when an amount is divided by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrAmountOverflow is returned when a result does not fit into int64 minimal units.
	ErrAmountOverflow = errors.New("amount overflow")
)

var (
	decHalf = decimal.MustNew(5, 1)
	decOne  = decimal.MustNew(1, 0)
)

// Amount type represents a currency-tagged amount stored as a signed count of
// minimal units (pennies, cents, chips).
// Its zero value corresponds to "GBP 0.00".
// Amount is immutable: every operation returns a new value.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Amount values are comparable with ==; two amounts are equal when they have
// the same currency and the same number of minimal units.
type Amount struct {
	curr  Currency // registered currency
	units int64    // amount in minimal units
}

// NewAmount returns an amount holding exactly the given number of minimal
// units of the currency.
// See also method [Amount.MinorUnits].
func NewAmount(curr Currency, units int64) Amount {
	return Amount{curr: curr, units: units}
}

// NewAmountFromMinorUnits converts a currency code and an integer, representing
// minimal units of currency, to an amount.
// It is the inverse of the pair ([Amount.Curr], [Amount.MinorUnits]) and is
// useful for reading amounts from storage.
//
// NewAmountFromMinorUnits returns an error if the currency code is not registered.
func NewAmountFromMinorUnits(code string, units int64) (Amount, error) {
	c, err := ParseCurr(code)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewAmount(c, units), nil
}

// NewAmountFromMajor converts a human-entered string, representing major units
// of currency, to an amount.
// The number is scaled by the precision of the currency and rounded to the
// nearest minimal unit using [rounding half away from zero].
// Leading and trailing spaces are ignored.
//
//	NewAmountFromMajor(GBP, "5.20")  // GBP 5.20, 520 pennies
//	NewAmountFromMajor(GBP, "0.005") // GBP 0.01
//	NewAmountFromMajor(Chips, "7")   // chips 7
//
// NewAmountFromMajor returns an error if:
//   - the string is not a decimal number;
//   - the result does not fit into int64 minimal units.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func NewAmountFromMajor(curr Currency, amount string) (Amount, error) {
	d, err := parseMajor(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	a, err := NewAmountFromDecimal(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// parseMajor parses a decimal string.
// Any parsing failure is reported as [ErrInvalidAmount].
func parseMajor(amount string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amount)
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return d, nil
}

// ParseAmount converts currency code and decimal strings to a (possibly rounded) amount.
// See also constructors [ParseCurr] and [NewAmountFromMajor].
func ParseAmount(code, amount string) (Amount, error) {
	c, err := ParseCurr(code)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewAmountFromMajor(c, amount)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(code, amount string) Amount {
	a, err := ParseAmount(code, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", code, amount, err))
	}
	return a
}

// NewAmountFromDecimal converts a decimal, representing major units of currency,
// to a (possibly rounded) amount using [rounding half away from zero].
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the result does not fit into int64
// minimal units.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	prec := decimal.MustNew(curr.Precision(), 0)
	d, err := amount.Mul(prec)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	units, err := roundToUnits(d)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(curr, units), nil
}

// NewAmountFromFloat64 converts a float, representing major units of currency,
// to a (possibly rounded) amount.
// The float is first converted to its shortest decimal representation, so
// that 5.2 means exactly 5.20 and not 5.2000000000000001776.
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the result does not fit into int64 minimal units.
func NewAmountFromFloat64(curr Currency, amount float64) (Amount, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidAmount, amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	a, err := NewAmountFromMajor(curr, s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// roundToUnits rounds a decimal to an integer using rounding half away from zero.
func roundToUnits(d decimal.Decimal) (int64, error) {
	t := d.Trunc(0)
	f, err := d.Sub(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	if f.Abs().Cmp(decHalf) >= 0 {
		if d.IsNeg() {
			t, err = t.Sub(decOne)
		} else {
			t, err = t.Add(decOne)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
		}
	}
	units, _, ok := t.Int64(0)
	if !ok {
		return 0, fmt.Errorf("%w: %v does not fit into int64", ErrAmountOverflow, t)
	}
	return units, nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// MinorUnits returns the amount in minimal units of currency
// (e.g. pennies, cents, chips).
// See also constructors [NewAmount] and [NewAmountFromMinorUnits].
func (a Amount) MinorUnits() int64 {
	return a.units
}

// Decimal returns the amount in major units, with as many digits after the
// decimal point as the scale of its currency.
// When the precision of the currency is 1, the result is the integer number
// of minimal units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.MustNew(a.units, a.Curr().Scale())
}

// Float64 returns the nearest binary floating-point number to the amount in
// major units.
// This conversion may lose data, as float64 cannot represent every decimal.
func (a Amount) Float64() float64 {
	f, _ := a.Decimal().Float64()
	return f
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch {
	case a.units < 0:
		return -1
	case a.units > 0:
		return 1
	default:
		return 0
	}
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.units == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.units < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.units > 0
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// mismatch returns an error naming the currencies of both amounts.
func (a Amount) mismatch(b Amount) error {
	return fmt.Errorf("%w: %v vs %v", ErrCurrencyMismatch, a.Curr(), b.Curr())
}

// Abs returns the absolute value of the amount.
//
// Abs returns an error if the amount holds [math.MinInt64] minimal units.
func (a Amount) Abs() (Amount, error) {
	if a.units >= 0 {
		return a, nil
	}
	return a.Neg()
}

// Neg returns an amount with the opposite sign.
//
// Neg returns an error if the amount holds [math.MinInt64] minimal units.
func (a Amount) Neg() (Amount, error) {
	if a.units == math.MinInt64 {
		return Amount{}, fmt.Errorf("computing [-%v]: %w", a, ErrAmountOverflow)
	}
	return NewAmount(a.Curr(), -a.units), nil
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the result does not fit into int64 minimal units.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, a.mismatch(b)
	}
	u, err := addUnits(a.units, b.units)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), u), nil
}

// AddUnits returns the sum of amount a and n minimal units of its currency.
// The number is never interpreted as major units: GBP 3.10 plus 5 is GBP 3.15.
//
// AddUnits returns an error if the result does not fit into int64 minimal units.
func (a Amount) AddUnits(n int64) (Amount, error) {
	u, err := addUnits(a.units, n)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, n, err)
	}
	return NewAmount(a.Curr(), u), nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the result does not fit into int64 minimal units.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, a.mismatch(b)
	}
	u, err := subUnits(a.units, b.units)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), u), nil
}

// SubUnits returns the difference between amount a and n minimal units of
// its currency.
//
// SubUnits returns an error if the result does not fit into int64 minimal units.
func (a Amount) SubUnits(n int64) (Amount, error) {
	u, err := subUnits(a.units, n)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, n, err)
	}
	return NewAmount(a.Curr(), u), nil
}

func addUnits(x, y int64) (int64, error) {
	z := x + y
	if (z > x) != (y > 0) {
		return 0, ErrAmountOverflow
	}
	return z, nil
}

func subUnits(x, y int64) (int64, error) {
	z := x - y
	if (z < x) != (y > 0) {
		return 0, ErrAmountOverflow
	}
	return z, nil
}

// Mul returns the product of amount a and factor e, rounded to the nearest
// minimal unit using [rounding half away from zero].
// Integer factors give exact results.
//
// Mul returns an error if the result does not fit into int64 minimal units.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e decimal.Decimal) (Amount, error) {
	d, err := decimal.MustNew(a.units, 0).Mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	u, err := roundToUnits(d)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), u), nil
}

// MulInt returns the exact product of amount a and integer factor n.
//
// MulInt returns an error if the result does not fit into int64 minimal units.
func (a Amount) MulInt(n int64) (Amount, error) {
	if a.units == 0 || n == 0 {
		return NewAmount(a.Curr(), 0), nil
	}
	u := a.units * n
	if u/n != a.units || (a.units == -1 && n == math.MinInt64) || (n == -1 && a.units == math.MinInt64) {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, n, ErrAmountOverflow)
	}
	return NewAmount(a.Curr(), u), nil
}

// Quo returns the quotient of amount a and divisor e, rounded to the nearest
// minimal unit using [rounding half away from zero].
// It is equivalent to multiplying by 1/e without the intermediate rounding of 1/e.
// See also method [Amount.Split].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the result does not fit into int64 minimal units.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, err := a.quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	d, err := decimal.MustNew(a.units, 0).Quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	u, err := roundToUnits(d)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), u), nil
}

// QuoInt is like [Amount.Quo] with an integer divisor.
func (a Amount) QuoInt(n int64) (Amount, error) {
	return a.Quo(decimal.MustNew(n, 0))
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one minimal unit each.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", a, parts)
	}
	n := int64(parts)
	quo, rem := a.units/n, a.units%n
	ulp := int64(1)
	if rem < 0 {
		ulp, rem = -1, -rem
	}
	res := make([]Amount, parts)
	for i := range res {
		u := quo
		if int64(i) < rem {
			u += ulp
		}
		res[i] = NewAmount(a.Curr(), u)
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
// Amounts of different currencies are never ordered by magnitude.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, a.mismatch(b))
	}
	return a.CmpUnits(b.units), nil
}

// CmpUnits compares amount a with n minimal units of its currency and returns:
//
//	-1 if a < n
//	 0 if a = n
//	+1 if a > n
//
// The number is never interpreted as major units: GBP 3.10 is greater than 309.
func (a Amount) CmpUnits(n int64) int {
	switch {
	case a.units < n:
		return -1
	case a.units > n:
		return 1
	default:
		return 0
	}
}

// Equal returns true if amounts have the same currency and the same number
// of minimal units.
// Amounts of different currencies are never equal, not even when both are zero.
func (a Amount) Equal(b Amount) bool {
	return a == b
}

// EqualUnits reports whether amount a equals the bare number n.
// Only zero equals a bare number:
//
//	NewAmount(GBP, 0).EqualUnits(0)     // true
//	NewAmount(GBP, 100).EqualUnits(100) // false
//
// Use [Amount.CmpUnits] to compare an amount with a number of minimal units.
func (a Amount) EqualUnits(n int64) bool {
	return a.units == 0 && n == 0
}

// Min returns the smaller amount.
// See also method [Amount.Cmp].
//
// Min returns an error if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0: // a <= b
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
// See also method [Amount.Cmp].
//
// Max returns an error if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0: // a >= b
		return a, nil
	default:
		return b, nil
	}
}

// Clamp compares amounts and returns:
//
//	min if a < min
//	max if a > max
//	  a otherwise
//
// Clamp returns an error if:
//   - amounts are denominated in different currencies;
//   - min is greater than max.
func (a Amount) Clamp(min, max Amount) (Amount, error) {
	switch c, err := min.Cmp(max); {
	case err != nil:
		return Amount{}, err
	case c > 0: // min > max
		return Amount{}, fmt.Errorf("clamping %v: invalid range", a)
	}
	switch c, err := a.Cmp(min); {
	case err != nil:
		return Amount{}, err
	case c < 0: // a < min
		return min, nil
	}
	switch c, err := a.Cmp(max); {
	case err != nil:
		return Amount{}, err
	case c > 0: // a > max
		return max, nil
	}
	return a, nil
}

// MajorString returns the amount in major units without the currency:
// "5.20" for 520 pennies, "7" for 7 chips.
// See also methods [Amount.String] and [Amount.Decimal].
func (a Amount) MajorString() string {
	return a.Decimal().String()
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, for example "GBP 5.20" or "chips 7".
// See also methods [Currency.String], [Amount.MajorString], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.MajorString()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                |
//	| ------ | ---------- | -------------------------- |
//	| %s, %v | GBP 5.20   | Currency and amount        |
//	| %q     | "GBP 5.20" | Quoted currency and amount |
//	| %f     | 5.20       | Amount in major units      |
//	| %d     | 520        | Amount in minimal units    |
//	| %c     | GBP        | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+' format flag can be used with %f and %d.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		text = a.MajorString()
	case 'd', 'D':
		text = strconv.FormatInt(a.units, 10)
	case 'c', 'C':
		text = a.Curr().Code()
	default:
		text = a.String()
	}

	// Arithmetic sign
	if (verb == 'f' || verb == 'F' || verb == 'd' || verb == 'D') && state.Flag('+') && a.units >= 0 {
		text = "+" + text
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	buf := pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
