package money

import (
	"regexp"
	"strconv"

	"github.com/govalues/decimal"
)

// TextFormatter renders numbers for humans.
// Package [github.com/picklive/money/textfmt] provides the default implementation.
type TextFormatter interface {
	// Currency renders a major amount with a currency symbol, e.g. "£1,234.50".
	Currency(amount decimal.Decimal, symbol string) string
	// Pluralize renders a count with the noun form matching it, e.g. "1 Chip", "2 Chips".
	Pluralize(count int64, singular, plural string) string
}

// trailingZeros matches a decimal point followed by zeros at the end of a string.
var trailingZeros = regexp.MustCompile(`\.0+$`)

// DisplayOption configures a [Display].
type DisplayOption func(*Display)

// WithSubunits makes [Display.Short] write amounts smaller than one major
// unit in minimal units, e.g. "10p" instead of "£0.10".
func WithSubunits() DisplayOption {
	return func(d *Display) {
		d.subunits = true
	}
}

// Display turns amounts into display strings.
// It is safe for concurrent use if its [TextFormatter] is.
type Display struct {
	fmt      TextFormatter
	subunits bool
}

// NewDisplay returns a display delegating number rendering to f.
func NewDisplay(f TextFormatter, opts ...DisplayOption) *Display {
	d := &Display{fmt: f}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Long returns the full display string of an amount:
// "£5.00" for cash, "5 Chips" for virtual currencies.
func (d *Display) Long(a Amount) string {
	return d.render(a, a.Curr().Symbol())
}

// HTML is like [Display.Long] but uses the HTML symbol of the currency.
func (d *Display) HTML(a Amount) string {
	return d.render(a, a.Curr().HTMLSymbol())
}

// Short returns a display string suitable for sentences.
// Zero decimals are dropped, so £5.00 becomes "£5" while £5.50 stays "£5.50".
// With [WithSubunits], a non-zero cash amount smaller than one major unit
// is written in minimal units: "10p".
// Virtual currencies render as in [Display.Long].
func (d *Display) Short(a Amount) string {
	c := a.Curr()
	if c.IsVirtual() {
		return d.Long(a)
	}
	if d.subunits && c.Subunit() != "" && a.units != 0 && a.units > -c.Precision() && a.units < c.Precision() {
		return strconv.FormatInt(a.units, 10) + c.Subunit()
	}
	return trimZeros(d.Long(a))
}

func (d *Display) render(a Amount, symbol string) string {
	c := a.Curr()
	if c.IsVirtual() {
		return d.fmt.Pluralize(a.units, c.Singular(), c.Plural())
	}
	return d.fmt.Currency(a.Decimal(), symbol)
}

// trimZeros removes a trailing decimal point followed by one or more zeros.
func trimZeros(s string) string {
	return trailingZeros.ReplaceAllString(s, "")
}
