package alphavantage

import (
	"net/url"
	"strings"
)

// Query is the address of a time series request.
type Query struct {
	URL      string // base address, without the "/query" path
	Function string
	Symbol   string
	APIKey   string
}

// String builds the request address,
// "<URL>/query?function=<Function>&symbol=<Symbol>&apikey=<APIKey>".
func (q Query) String() string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(q.URL, "/"))
	b.WriteString("/query?function=")
	b.WriteString(url.QueryEscape(q.Function))
	b.WriteString("&symbol=")
	b.WriteString(url.QueryEscape(q.Symbol))
	b.WriteString("&apikey=")
	b.WriteString(url.QueryEscape(q.APIKey))
	return b.String()
}
