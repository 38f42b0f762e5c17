// Package textfmt renders amounts and counts for English-speaking locales.
// It groups digits the way the locale does, always uses '.' as the decimal
// separator, and picks noun forms with CLDR plural rules.
package textfmt

import (
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultScale is the number of digits after the decimal point used when an
// amount has fewer.
const DefaultScale = 2

// Formatter implements money.TextFormatter.
// Formatter is safe for concurrent use.
type Formatter struct {
	base    language.Tag // plural rules are looked up by base language
	printer *message.Printer
}

// New returns a formatter for the given locale.
func New(tag language.Tag) *Formatter {
	base, _ := tag.Base()
	return &Formatter{
		base:    language.Make(base.String()),
		printer: message.NewPrinter(tag),
	}
}

// Default returns a formatter for British English.
func Default() *Formatter {
	return New(language.BritishEnglish)
}

// Currency renders amount with the symbol in front, e.g. "£1,234.50" or "-£5.00".
// Amounts with fewer than [DefaultScale] decimals are zero-padded.
func (f *Formatter) Currency(amount decimal.Decimal, symbol string) string {
	scale := max(amount.Scale(), DefaultScale)
	amount = amount.Pad(scale)

	whole, frac, ok := amount.Abs().Int64(scale)
	if !ok {
		// Fall back to the plain representation for amounts beyond int64.
		return symbol + amount.String()
	}

	var b strings.Builder
	if amount.IsNeg() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(f.printer.Sprintf("%d", whole))
	if scale > 0 {
		digits := strconv.FormatInt(frac, 10)
		b.WriteByte('.')
		b.WriteString(strings.Repeat("0", scale-len(digits)))
		b.WriteString(digits)
	}
	return b.String()
}

// Pluralize renders count followed by the noun form the locale requires,
// e.g. "1 Chip", "0 Chips", "1,500 Chips".
func (f *Formatter) Pluralize(count int64, one, other string) string {
	noun := other
	if f.form(count) == plural.One {
		noun = one
	}
	return f.printer.Sprintf("%d", count) + " " + noun
}

// form returns the cardinal plural form of an integer count.
func (f *Formatter) form(count int64) plural.Form {
	n := count
	if n < 0 {
		n = -n
	}
	// Operands of an integer: i = n, v = w = f = t = 0.
	return plural.Cardinal.MatchPlural(f.base, int(n), 0, 0, 0, 0)
}
