package stockview

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price is an exact amount in a currency.
type Price struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// NewPrice returns a price of v in currency cur (an ISO code such as "USD").
func NewPrice[T float64 | decimal.Decimal](v T, cur string) Price {
	switch v := any(v).(type) {
	case decimal.Decimal:
		return Price{value: v, cur: cur}
	case float64:
		return Price{value: decimal.NewFromFloat(v), cur: cur}
	}
	panic("unreachable")
}

// currency returns the price's currency
func (p Price) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, p.cur).Currency()
}

// String formats the price with its currency symbol, rounded to the currency's fraction.
func (p Price) String() string {
	cur := p.currency()
	dec := p.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with a leading '+' for positive prices.
func (p Price) SignedString() string {
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

func (p Price) Currency() string         { return p.cur }
func (p Price) Decimal() decimal.Decimal { return p.value }
func (p Price) Float64() float64         { return p.value.InexactFloat64() }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) Sub(q Price) Price        { return Price{value: p.value.Sub(q.value), cur: p.cur} }
