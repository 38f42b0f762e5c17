package money

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a cash or virtual currency known to the registry.
// The zero value is [GBP].
//
// Currency is implemented as an integer index into in-memory arrays that
// store the properties of every registered currency, such as code, precision
// and symbol.
// The arrays are generated at build time and never change afterwards, so
// Currency values are safe for concurrent use by multiple goroutines.
//
// When persisting a currency value, use the code returned by the
// [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
type Currency uint8

// ErrUnknownCurrency is returned when a code does not match any registered
// currency or alias.
var ErrUnknownCurrency = errors.New("unknown currency code")

// ParseCurr converts a code to currency.
// The match is exact and case-sensitive:
//
//	GBP
//	USD
//	chips
//	tickets
//
// The singular aliases "chip" and "ticket" are deprecated but still resolve.
// ParseCurr logs a warning through the global [zap.Logger] when an alias is used,
// see [zap.ReplaceGlobals].
//
// ParseCurr returns an error if the string does not represent a registered currency code.
func ParseCurr(code string) (Currency, error) {
	c, ok := currLookup[code]
	if !ok {
		return GBP, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	if aliasLookup[code] {
		zap.L().Warn("deprecated currency code",
			zap.String("code", code),
			zap.String("canonical", c.Code()),
		)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// All returns the registered currencies in registration order.
func All() []Currency {
	all := make([]Currency, len(codeLookup))
	for i := range all {
		all[i] = Currency(i)
	}
	return all
}

// CashCodes returns the codes of all cash currencies in registration order.
// Together with [VirtualCodes] it partitions the codes of [All].
func CashCodes() []string {
	var codes []string
	for _, c := range All() {
		if c.IsCash() {
			codes = append(codes, c.Code())
		}
	}
	return codes
}

// VirtualCodes returns the codes of all virtual currencies in registration order.
func VirtualCodes() []string {
	var codes []string
	for _, c := range All() {
		if c.IsVirtual() {
			codes = append(codes, c.Code())
		}
	}
	return codes
}

// Code returns the canonical code of the currency, for example "GBP" or "chips".
// This method always returns a canonical code, never an alias.
func (c Currency) Code() string {
	return codeLookup[c]
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Precision returns the number of minimal units in one major unit of
// the currency: 100 for pounds and dollars, 1 for chips and tickets.
// Precision is always a positive power of ten.
func (c Currency) Precision() int64 {
	return precisionLookup[c]
}

// Scale returns the number of digits after the decimal point required for
// representing the minimal unit of a currency.
// It is the base-10 logarithm of [Currency.Precision].
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Symbol returns the display glyph of the currency, for example "£".
// Virtual currencies have no symbol.
func (c Currency) Symbol() string {
	return symbolLookup[c]
}

// HTMLSymbol returns the symbol of the currency escaped for HTML.
func (c Currency) HTMLSymbol() string {
	return htmlSymbolLookup[c]
}

// Subunit returns the suffix used when an amount is written in minimal
// units, for example "p" in "10p".
// Currencies without a subdivision return an empty string.
func (c Currency) Subunit() string {
	return subunitLookup[c]
}

// Singular returns the noun naming one major unit of the currency.
func (c Currency) Singular() string {
	return singularLookup[c]
}

// Plural returns the noun naming several major units of the currency.
func (c Currency) Plural() string {
	return pluralLookup[c]
}

// IsCash returns true if the currency is backed by real-world money.
func (c Currency) IsCash() bool {
	return cashLookup[c]
}

// IsVirtual returns true if the currency is a points-like currency.
// It is the opposite of [Currency.IsCash].
func (c Currency) IsVirtual() bool {
	return !c.IsCash()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", GBP, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a canonical code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	code := c.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", GBP, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a canonical code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
// It reads a currency_code column.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", GBP, NullCurrency{}, GBP)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, GBP, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | GBP     | Currency        |
//	| %q         | "GBP"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}
	buf := pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// pad applies the width of the state to the text.
// Text is aligned to the right unless the '-' flag is set.
func pad(state fmt.State, text string) []byte {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		return []byte(text)
	}
	buf := make([]byte, 0, w)
	spaces := w - len(text)
	if !state.Flag('-') {
		for range spaces {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, text...)
	if state.Flag('-') {
		for range spaces {
			buf = append(buf, ' ')
		}
	}
	return buf
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = GBP
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = GBP
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
