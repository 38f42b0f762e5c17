// Package scope filters records by the classification of their currency.
package scope

import (
	"github.com/picklive/money"
)

// Coded is implemented by records that store a currency code.
type Coded interface {
	CurrencyCode() string
}

// CashOnly returns the records denominated in a cash currency.
// Records with unknown codes are dropped.
func CashOnly[T Coded](recs []T) []T {
	return filter(recs, money.CashCodes())
}

// VirtualOnly returns the records denominated in a virtual currency.
// Records with unknown codes are dropped.
func VirtualOnly[T Coded](recs []T) []T {
	return filter(recs, money.VirtualCodes())
}

func filter[T Coded](recs []T, codes []string) []T {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	var res []T
	for _, r := range recs {
		if _, ok := set[r.CurrencyCode()]; ok {
			res = append(res, r)
		}
	}
	return res
}

// Predicate is a SQL condition with its positional arguments.
type Predicate struct {
	SQL  string
	Args []any
}

// CashPredicate returns the condition selecting rows whose column holds a
// cash currency code, e.g. `currency_code = ANY($1)`.
// The argument is a []string, which Postgres drivers encode as text[].
func CashPredicate(column string) Predicate {
	return anyOf(column, money.CashCodes())
}

// VirtualPredicate is like [CashPredicate] for virtual currencies.
func VirtualPredicate(column string) Predicate {
	return anyOf(column, money.VirtualCodes())
}

func anyOf(column string, codes []string) Predicate {
	return Predicate{
		SQL:  column + " = ANY($1)",
		Args: []any{codes},
	}
}
