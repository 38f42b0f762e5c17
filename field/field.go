// Package field maps amounts to and from the pair of columns used to store
// them: an integer number of minimal units and a currency code.
package field

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"

	"github.com/picklive/money"
)

// ErrUnsupportedValue is returned by [Mapper.Encode] for values it cannot
// interpret as an amount.
var ErrUnsupportedValue = errors.New("unsupported value")

// Config holds the settings of a [Mapper].
type Config struct {
	// DefaultCurrency is the currency of bare numbers given to [Mapper.Encode].
	DefaultCurrency money.Currency
}

// Column is the storage side of a currency field.
type Column struct {
	Code  string        // currency_code column
	Units sql.NullInt64 // <field>_in_pennies column
}

// Mapper converts between amounts and columns.
// Mapper is safe for concurrent use.
type Mapper struct {
	cfg Config
}

// New returns a mapper using cfg.
func New(cfg Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// DefaultCurrency returns the currency of bare numbers.
func (m *Mapper) DefaultCurrency() money.Currency {
	return m.cfg.DefaultCurrency
}

// Decode builds the amount stored in c.
// It returns false if the units column is null.
//
// Decode returns an error if the currency code is not registered.
func (m *Mapper) Decode(c Column) (money.Amount, bool, error) {
	if !c.Units.Valid {
		return money.Amount{}, false, nil
	}
	a, err := money.NewAmountFromMinorUnits(c.Code, c.Units.Int64)
	if err != nil {
		return money.Amount{}, false, fmt.Errorf("decoding column: %w", err)
	}
	return a, true, nil
}

// Encode converts v into columns.
// An amount is decomposed as is. Bare numbers are major units of the
// default currency, rounded half away from zero:
//
//	money.Amount                    // any currency
//	int, int64                      // whole major units
//	float64                         // major units
//	string                          // major units, e.g. "5.20"
//	decimal.Decimal                 // github.com/govalues/decimal
//	shopspring/decimal.Decimal      // github.com/shopspring/decimal
//	nil                             // null units, default currency code
//
// Encode returns an error if v is not one of the types above or cannot be
// converted to an amount.
func (m *Mapper) Encode(v any) (Column, error) {
	a, err := m.amount(v)
	if err != nil {
		return Column{}, fmt.Errorf("encoding %T: %w", v, err)
	}
	if a == nil {
		return Column{Code: m.cfg.DefaultCurrency.Code()}, nil
	}
	return Column{
		Code:  a.Curr().Code(),
		Units: sql.NullInt64{Int64: a.MinorUnits(), Valid: true},
	}, nil
}

func (m *Mapper) amount(v any) (*money.Amount, error) {
	curr := m.cfg.DefaultCurrency
	var (
		a   money.Amount
		err error
	)
	switch v := v.(type) {
	case nil:
		return nil, nil
	case money.Amount:
		a = v
	case *money.Amount:
		if v == nil {
			return nil, nil
		}
		a = *v
	case int:
		a, err = money.NewAmount(curr, int64(v)).MulInt(curr.Precision())
	case int64:
		a, err = money.NewAmount(curr, v).MulInt(curr.Precision())
	case float64:
		a, err = money.NewAmountFromFloat64(curr, v)
	case string:
		a, err = money.NewAmountFromMajor(curr, v)
	case decimal.Decimal:
		a, err = money.NewAmountFromDecimal(curr, v)
	case shopspring.Decimal:
		a, err = money.NewAmountFromMajor(curr, v.String())
	default:
		return nil, ErrUnsupportedValue
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
