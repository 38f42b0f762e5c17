package money_test

import (
	"fmt"

	"github.com/govalues/decimal"

	"github.com/picklive/money"
	"github.com/picklive/money/textfmt"
)

// PrizePool collects the entry fees of a game, keeps the house rake and
// shares the rest between the winners.
func PrizePool(fee money.Amount, entrants int64, rake decimal.Decimal, winners int) ([]money.Amount, money.Amount, error) {
	total, err := fee.MulInt(entrants)
	if err != nil {
		return nil, money.Amount{}, err
	}
	house, err := total.Mul(rake)
	if err != nil {
		return nil, money.Amount{}, err
	}
	pool, err := total.Sub(house)
	if err != nil {
		return nil, money.Amount{}, err
	}
	prizes, err := pool.Split(winners)
	if err != nil {
		return nil, money.Amount{}, err
	}
	return prizes, house, nil
}

// In this example, the fees of seven entrants are pooled, a 10% rake is
// taken and the remainder is shared between four winners.
// Pennies that cannot be shared evenly go to the first winners.
func Example_prizePool() {
	fee := money.MustParseAmount("GBP", "2.50")
	prizes, house, err := PrizePool(fee, 7, money.Percent(10), 4)
	if err != nil {
		panic(err)
	}
	d := money.NewDisplay(textfmt.Default())
	for i, p := range prizes {
		fmt.Printf("Winner %v = %v\n", i+1, d.Long(p))
	}
	fmt.Printf("House    = %v\n", d.Long(house))
	// Output:
	// Winner 1 = £3.94
	// Winner 2 = £3.94
	// Winner 3 = £3.94
	// Winner 4 = £3.93
	// House    = £1.75
}

// In this example, amounts are shown to players in sentences.
func Example_display() {
	d := money.NewDisplay(textfmt.Default(), money.WithSubunits())
	fmt.Printf("You won %v!\n", d.Short(money.Pounds(5)))
	fmt.Printf("You won %v!\n", d.Short(money.Pennies(550)))
	fmt.Printf("You won %v!\n", d.Short(money.Pennies(10)))
	fmt.Printf("You won %v!\n", d.Short(money.NewChips(1)))
	fmt.Printf("You won %v!\n", d.Short(money.NewChips(1500)))
	// Output:
	// You won £5!
	// You won £5.50!
	// You won 10p!
	// You won 1 Chip!
	// You won 1,500 Chips!
}

func ExampleNewAmount() {
	fmt.Println(money.NewAmount(money.GBP, 520))
	fmt.Println(money.NewAmount(money.Chips, 7))
	// Output:
	// GBP 5.20
	// chips 7
}

func ExampleNewAmountFromMinorUnits() {
	fmt.Println(money.NewAmountFromMinorUnits("USD", 1999))
	fmt.Println(money.NewAmountFromMinorUnits("tickets", 3))
	// Output:
	// USD 19.99 <nil>
	// tickets 3 <nil>
}

func ExampleNewAmountFromMajor() {
	fmt.Println(money.NewAmountFromMajor(money.GBP, "5.20"))
	fmt.Println(money.NewAmountFromMajor(money.GBP, " 0.005 "))
	fmt.Println(money.NewAmountFromMajor(money.Chips, "7"))
	// Output:
	// GBP 5.20 <nil>
	// GBP 0.01 <nil>
	// chips 7 <nil>
}

func ExampleNewAmountFromDecimal() {
	d := decimal.MustNew(12345, 2)
	fmt.Println(money.NewAmountFromDecimal(money.USD, d))
	// Output: USD 123.45 <nil>
}

func ExampleNewAmountFromFloat64() {
	fmt.Println(money.NewAmountFromFloat64(money.GBP, 5.2))
	fmt.Println(money.NewAmountFromFloat64(money.GBP, -0.125))
	// Output:
	// GBP 5.20 <nil>
	// GBP -0.13 <nil>
}

func ExampleMustParseAmount() {
	fmt.Println(money.MustParseAmount("USD", "-1.2"))
	// Output: USD -1.20
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("GBP", "-12.3"))
	// Output: GBP -12.30 <nil>
}

func ExampleAmount_MinorUnits() {
	a := money.MustParseAmount("GBP", "-1.6789")
	b := money.MustParseAmount("USD", "0.005")
	c := money.MustParseAmount("chips", "12")
	fmt.Println(a.MinorUnits())
	fmt.Println(b.MinorUnits())
	fmt.Println(c.MinorUnits())
	// Output:
	// -168
	// 1
	// 12
}

func ExampleAmount_Decimal() {
	a := money.Pennies(520)
	fmt.Println(a.Decimal())
	// Output: 5.20
}

func ExampleAmount_Float64() {
	a := money.Pennies(520)
	b := money.NewChips(-3)
	fmt.Println(a.Float64())
	fmt.Println(b.Float64())
	// Output:
	// 5.2
	// -3
}

func ExampleAmount_Curr() {
	a := money.MustParseAmount("USD", "15.6")
	fmt.Println(a.Curr())
	// Output: USD
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("GBP", "15.6")
	b := money.MustParseAmount("GBP", "8")
	c := money.NewChips(8)
	fmt.Println(a.Add(b))
	fmt.Println(a.Add(c))
	// Output:
	// GBP 23.60 <nil>
	// GBP 0.00 computing [GBP 15.60 + chips 8]: currency mismatch: GBP vs chips
}

func ExampleAmount_AddUnits() {
	a := money.MustParseAmount("GBP", "3.10")
	fmt.Println(a.AddUnits(5))
	// Output: GBP 3.15 <nil>
}

func ExampleAmount_Sub() {
	a := money.MustParseAmount("USD", "15.6")
	b := money.MustParseAmount("USD", "8")
	fmt.Println(a.Sub(b))
	// Output: USD 7.60 <nil>
}

func ExampleAmount_SubUnits() {
	a := money.NewTickets(3)
	fmt.Println(a.SubUnits(1))
	// Output: tickets 2 <nil>
}

func ExampleAmount_Mul() {
	a := money.Pennies(999)
	e := decimal.MustParse("1.5")
	fmt.Println(a.Mul(e))
	// Output: GBP 14.99 <nil>
}

func ExampleAmount_MulInt() {
	a := money.MustParseAmount("GBP", "2.50")
	fmt.Println(a.MulInt(3))
	// Output: GBP 7.50 <nil>
}

func ExampleAmount_Quo() {
	a := money.Pounds(10)
	e := decimal.MustNew(3, 0)
	fmt.Println(a.Quo(e))
	fmt.Println(a.Quo(decimal.MustNew(0, 0)))
	// Output:
	// GBP 3.33 <nil>
	// GBP 0.00 computing [GBP 10.00 / 0]: division by zero
}

func ExampleAmount_QuoInt() {
	a := money.Pennies(200)
	fmt.Println(a.QuoInt(3))
	// Output: GBP 0.67 <nil>
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("USD", "1.01")
	fmt.Println(a.Split(5))
	fmt.Println(a.Split(4))
	fmt.Println(a.Split(3))
	fmt.Println(a.Split(2))
	fmt.Println(a.Split(1))
	// Output:
	// [USD 0.21 USD 0.20 USD 0.20 USD 0.20 USD 0.20] <nil>
	// [USD 0.26 USD 0.25 USD 0.25 USD 0.25] <nil>
	// [USD 0.34 USD 0.34 USD 0.33] <nil>
	// [USD 0.51 USD 0.50] <nil>
	// [USD 1.01] <nil>
}

func ExampleAmount_Abs() {
	a := money.MustParseAmount("GBP", "-15.67")
	fmt.Println(a.Abs())
	// Output: GBP 15.67 <nil>
}

func ExampleAmount_Neg() {
	a := money.MustParseAmount("GBP", "15.67")
	fmt.Println(a.Neg())
	// Output: GBP -15.67 <nil>
}

func ExampleAmount_Sign() {
	a := money.Pennies(-23)
	b := money.Pennies(0)
	c := money.Pennies(23)
	fmt.Println(a.Sign())
	fmt.Println(b.Sign())
	fmt.Println(c.Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleAmount_IsZero() {
	a := money.Pennies(0)
	b := money.Pennies(1)
	fmt.Println(a.IsZero())
	fmt.Println(b.IsZero())
	// Output:
	// true
	// false
}

func ExampleAmount_IsNeg() {
	a := money.Pennies(-1)
	b := money.Pennies(0)
	fmt.Println(a.IsNeg())
	fmt.Println(b.IsNeg())
	// Output:
	// true
	// false
}

func ExampleAmount_IsPos() {
	a := money.Pennies(1)
	b := money.Pennies(0)
	fmt.Println(a.IsPos())
	fmt.Println(b.IsPos())
	// Output:
	// true
	// false
}

func ExampleAmount_SameCurr() {
	a := money.Pounds(1)
	b := money.Pennies(5)
	c := money.NewChips(1)
	fmt.Println(a.SameCurr(b))
	fmt.Println(a.SameCurr(c))
	// Output:
	// true
	// false
}

func ExampleAmount_Cmp() {
	a := money.Pennies(310)
	b := money.Pennies(309)
	fmt.Println(a.Cmp(b))
	fmt.Println(b.Cmp(a))
	fmt.Println(a.Cmp(a))
	// Output:
	// 1 <nil>
	// -1 <nil>
	// 0 <nil>
}

func ExampleAmount_CmpUnits() {
	a := money.MustParseAmount("GBP", "3.10")
	fmt.Println(a.CmpUnits(309))
	fmt.Println(a.CmpUnits(310))
	fmt.Println(a.CmpUnits(311))
	// Output:
	// 1
	// 0
	// -1
}

func ExampleAmount_Equal() {
	a := money.Pennies(0)
	b := money.NewChips(0)
	fmt.Println(a.Equal(money.Pounds(0)))
	fmt.Println(a.Equal(b))
	// Output:
	// true
	// false
}

func ExampleAmount_EqualUnits() {
	a := money.Pennies(0)
	b := money.Pennies(100)
	fmt.Println(a.EqualUnits(0))
	fmt.Println(b.EqualUnits(100))
	// Output:
	// true
	// false
}

func ExampleAmount_Max() {
	a := money.Pennies(2330)
	b := money.Pennies(2340)
	fmt.Println(a.Max(b))
	// Output: GBP 23.40 <nil>
}

func ExampleAmount_Min() {
	a := money.Pennies(2330)
	b := money.Pennies(2340)
	fmt.Println(a.Min(b))
	// Output: GBP 23.30 <nil>
}

func ExampleAmount_Clamp() {
	min := money.Pounds(0)
	max := money.Pounds(100)
	fmt.Println(money.Pounds(-5).Clamp(min, max))
	fmt.Println(money.Pounds(50).Clamp(min, max))
	fmt.Println(money.Pounds(500).Clamp(min, max))
	// Output:
	// GBP 0.00 <nil>
	// GBP 50.00 <nil>
	// GBP 100.00 <nil>
}

func ExampleAmount_MajorString() {
	fmt.Println(money.Pennies(520).MajorString())
	fmt.Println(money.NewChips(7).MajorString())
	// Output:
	// 5.20
	// 7
}

func ExampleAmount_String() {
	a := money.MustParseAmount("USD", "-1234567890.12")
	fmt.Println(a.String())
	// Output: USD -1234567890.12
}

func ExampleAmount_Format() {
	a := money.MustParseAmount("GBP", "-123.456")
	b := money.NewChips(7)
	fmt.Printf("%v\n", a)
	fmt.Printf("%f\n", a)
	fmt.Printf("%d\n", a)
	fmt.Printf("%c\n", a)
	fmt.Printf("%+d\n", b)
	fmt.Printf("%q\n", b)
	// Output:
	// GBP -123.46
	// -123.46
	// -12346
	// GBP
	// +7
	// "chips 7"
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("GBP"))
	fmt.Println(money.ParseCurr("chips"))
	fmt.Println(money.ParseCurr("gbp"))
	// Output:
	// GBP <nil>
	// chips <nil>
	// GBP unknown currency code: "gbp"
}

func ExampleMustParseCurr() {
	fmt.Println(money.MustParseCurr("USD"))
	// Output: USD
}

func ExampleAll() {
	for _, c := range money.All() {
		fmt.Printf("%-8v cash=%v scale=%v\n", c, c.IsCash(), c.Scale())
	}
	// Output:
	// GBP      cash=true scale=2
	// USD      cash=true scale=2
	// chips    cash=false scale=0
	// tickets  cash=false scale=0
}

func ExampleCashCodes() {
	fmt.Println(money.CashCodes())
	fmt.Println(money.VirtualCodes())
	// Output:
	// [GBP USD]
	// [chips tickets]
}

func ExampleCurrency_Code() {
	fmt.Println(money.GBP.Code())
	fmt.Println(money.Tickets.Code())
	// Output:
	// GBP
	// tickets
}

func ExampleCurrency_Precision() {
	fmt.Println(money.GBP.Precision())
	fmt.Println(money.Chips.Precision())
	// Output:
	// 100
	// 1
}

func ExampleCurrency_Symbol() {
	fmt.Println(money.GBP.Symbol())
	fmt.Println(money.GBP.HTMLSymbol())
	fmt.Println(money.USD.Subunit())
	// Output:
	// £
	// &pound;
	// ¢
}

func ExampleCurrency_MarshalText() {
	b, err := money.Chips.MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: chips
}

func ExampleCurrency_UnmarshalText() {
	var c money.Currency
	err := c.UnmarshalText([]byte("tickets"))
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: tickets
}

func ExampleCurrency_Format() {
	fmt.Printf("%c\n", money.GBP)
	fmt.Printf("%q\n", money.Chips)
	fmt.Printf("%-6s|\n", money.USD)
	// Output:
	// GBP
	// "chips"
	// USD   |
}

func ExampleDisplay_Long() {
	d := money.NewDisplay(textfmt.Default())
	fmt.Println(d.Long(money.Pennies(123456)))
	fmt.Println(d.Long(money.Pounds(-5)))
	fmt.Println(d.Long(money.NewTickets(1)))
	// Output:
	// £1,234.56
	// -£5.00
	// 1 Ticket
}

func ExampleDisplay_HTML() {
	d := money.NewDisplay(textfmt.Default())
	fmt.Println(d.HTML(money.Pounds(5)))
	// Output: &pound;5.00
}

func ExampleDisplay_Short() {
	d := money.NewDisplay(textfmt.Default())
	fmt.Println(d.Short(money.Pounds(5)))
	fmt.Println(d.Short(money.Pennies(550)))
	fmt.Println(d.Short(money.Pennies(10)))
	// Output:
	// £5
	// £5.50
	// £0.10
}
