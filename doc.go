/*
Package money implements currency-tagged fixed-point amounts for cash
currencies, such as pounds and dollars, and for virtual currencies, such as
chips and tickets.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact integer representation: no floating-point rounding error
  - Per-currency precision: 100 pennies in a pound, 1 chip in a chip
  - Arithmetic and comparison that refuse to mix currencies
  - Cash and virtual classification of every registered currency
  - Display strings with a pluggable text formatter

# Representation

The package consists of two main types: Amount and Currency.
An Amount is a Currency and a signed int64 count of minimal units.
The Currency type is implemented as an integer index into in-memory arrays
containing information such as code, precision, symbol and classification.
The arrays are generated from scripts/currency/currency_data.csv.

# Registry

[ParseCurr] resolves codes to currencies. The registry is fixed at build time
and cannot be extended at runtime. [All], [CashCodes] and [VirtualCodes] list
its content. Deprecated singular aliases ("chip", "ticket") still resolve and
log a warning through the global zap logger.

# Construction

Amounts are built from minimal units with [NewAmount] or from major units with
[NewAmountFromMajor], [NewAmountFromDecimal] and [NewAmountFromFloat64].
Major amounts are scaled by the currency precision and rounded half away from
zero. Helpers such as [Pennies], [Pounds] and [NewChips] cover the built-in
currencies.

# Bare numbers

Operations taking a bare number, such as [Amount.AddUnits] and
[Amount.CmpUnits], treat it as minimal units, never major units:
GBP 3.10 is greater than 309.
[Amount.EqualUnits] is true only when both the amount and the number are zero.

# Errors

Errors are returned, never panicked, except by the Must* functions and the
integer literal helpers. Callers match them with [errors.Is] against
[ErrUnknownCurrency], [ErrCurrencyMismatch], [ErrInvalidAmount],
[ErrDivisionByZero] and [ErrAmountOverflow].
*/
package money
