package alphavantage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/date"
	"github.com/shopspring/decimal"
)

// ErrNoSeries is returned when a response holds no time series object.
var ErrNoSeries = errors.New("no time series in response")

const (
	symbolPath = `$["Meta Data"]["2. Symbol"]`
	closeField = "4. close"
)

// messages the API returns instead of data, with a 200 status.
var messageKeys = []string{"Error Message", "Information", "Note"}

// ParseDaily reads a daily time series response.
//
//	{
//	  "Meta Data": { "2. Symbol": "IBM", ... },
//	  "Time Series (Daily)": {
//	    "2024-01-02": { "1. open": "162.8300", ..., "4. close": "158.7500", ... },
//	    ...
//	  }
//	}
//
// Entries come in no particular order; the returned points are sorted by
// date. Entries with an invalid date or close price are skipped.
func ParseDaily(body []byte) (stockview.StockData, error) {
	var jobj map[string]any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return stockview.StockData{}, err
	}
	for _, key := range messageKeys {
		if msg, ok := jobj[key].(string); ok {
			return stockview.StockData{}, fmt.Errorf("%s: %s", key, msg)
		}
	}

	symbol := ""
	if jval, err := jsonpath.Get(symbolPath, jobj); err == nil {
		symbol, _ = jval.(string)
	}

	series, ok := timeSeries(jobj)
	if !ok {
		return stockview.StockData{}, ErrNoSeries
	}

	var prices date.History[float64]
	for day, jval := range series {
		on, err := date.Parse(day)
		if err != nil {
			log.Printf("skipping %q: %v", day, err)
			continue
		}
		entry, _ := jval.(map[string]any)
		str, _ := entry[closeField].(string)
		price, err := decimal.NewFromString(str)
		if err != nil {
			log.Printf("skipping %s: invalid close %q", day, str)
			continue
		}
		prices.Append(on, price.InexactFloat64())
	}

	points := make(chart.Series, 0, prices.Len())
	for on, price := range prices.Values() {
		points = append(points, chart.Sample{X: float64(on.Unix()), Y: price})
	}
	return stockview.StockData{
		Symbol: symbol,
		Points: points,
		Labels: stockview.DefaultLabels(symbol),
	}, nil
}

// timeSeries returns the first top level object whose key names a time
// series, e.g. "Time Series (Daily)" or "Weekly Time Series".
func timeSeries(jobj map[string]any) (map[string]any, bool) {
	if series, ok := jobj["Time Series (Daily)"].(map[string]any); ok {
		return series, true
	}
	for key, jval := range jobj {
		if !strings.Contains(key, "Time Series") {
			continue
		}
		if series, ok := jval.(map[string]any); ok {
			return series, true
		}
	}
	return nil, false
}
