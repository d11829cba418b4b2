// Package alphavantage fetches daily stock prices from an Alpha Vantage
// compatible time series API.
package alphavantage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/etnz/stockview"
)

// Client queries the time series API described by its Config.
type Client struct {
	Config stockview.Config
	// HTTP is the client used for requests. Responses are cached on disk for
	// the day when nil.
	HTTP *http.Client
}

// New returns a client with a daily disk cache.
func New(cfg stockview.Config) *Client {
	return &Client{Config: cfg, HTTP: newDailyCachingClient()}
}

// Query returns the request address for symbol.
func (c *Client) Query(symbol string) Query {
	return Query{
		URL:      c.Config.URL,
		Function: c.Config.Function,
		Symbol:   symbol,
		APIKey:   c.Config.APIKey,
	}
}

// FetchDaily retrieves the daily close prices of symbol.
func (c *Client) FetchDaily(ctx context.Context, symbol string) (stockview.StockData, error) {
	if err := c.Config.Validate(); err != nil {
		return stockview.StockData{}, err
	}
	client := c.HTTP
	if client == nil {
		client = newDailyCachingClient()
	}
	body, err := get(ctx, client, c.Query(symbol).String())
	if err != nil {
		return stockview.StockData{}, fmt.Errorf("cannot fetch %q: %w", symbol, err)
	}
	data, err := ParseDaily(body)
	if err != nil {
		return data, fmt.Errorf("cannot read %q prices: %w", symbol, err)
	}
	if data.Symbol == "" {
		data.Symbol = symbol
		data.Labels = stockview.DefaultLabels(symbol)
	}
	return data, nil
}
