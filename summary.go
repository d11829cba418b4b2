package stockview

import (
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/date"
)

// Summary is an at-a-glance overview of a daily price series.
type Summary struct {
	Symbol    string
	Count     int
	From, To  date.Date
	First     Price
	Last      Price
	Low, High Price
	Change    Price   // Last - First
	Return    float64 // Change / First, as a ratio
}

// Summarize computes the summary of the prices of symbol in currency cur.
// An empty series gives a summary with a zero Count.
func Summarize(symbol string, s chart.Series, cur string) Summary {
	sum := Summary{Symbol: symbol, Count: len(s)}
	if len(s) == 0 {
		return sum
	}
	first, last := s[0], s[len(s)-1]
	low, high := first.Y, first.Y
	for _, p := range s {
		low, high = min(low, p.Y), max(high, p.Y)
	}
	sum.From, sum.To = date.FromUnix(int64(first.X)), date.FromUnix(int64(last.X))
	sum.First, sum.Last = NewPrice(first.Y, cur), NewPrice(last.Y, cur)
	sum.Low, sum.High = NewPrice(low, cur), NewPrice(high, cur)
	sum.Change = sum.Last.Sub(sum.First)
	if !sum.First.IsZero() {
		sum.Return = sum.Change.Decimal().Div(sum.First.Decimal()).InexactFloat64()
	}
	return sum
}
