package alphavantage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/google/go-cmp/cmp"
)

const dailyResponse = `{
    "Meta Data": {
        "1. Information": "Daily Prices (open, high, low, close) and Volumes",
        "2. Symbol": "VUG",
        "3. Last Refreshed": "2024-01-04",
        "4. Output Size": "Compact",
        "5. Time Zone": "US/Eastern"
    },
    "Time Series (Daily)": {
        "2024-01-04": {"1. open": "310.0000", "2. high": "312.0000", "3. low": "309.0000", "4. close": "311.2500", "5. volume": "100"},
        "2024-01-02": {"1. open": "315.0000", "2. high": "316.0000", "3. low": "312.0000", "4. close": "313.5000", "5. volume": "100"},
        "2024-01-03": {"1. open": "312.0000", "2. high": "313.0000", "3. low": "308.0000", "4. close": "309.7500", "5. volume": "100"},
        "not a date": {"4. close": "1.0"},
        "2024-01-05": {"4. close": "n/a"}
    }
}`

func TestParseDaily(t *testing.T) {
	data, err := ParseDaily([]byte(dailyResponse))
	if err != nil {
		t.Fatalf("ParseDaily() unexpected error = %v", err)
	}
	if data.Symbol != "VUG" {
		t.Errorf("Symbol = %q, want %q", data.Symbol, "VUG")
	}
	want := chart.Series{
		{X: 1704153600, Y: 313.5},
		{X: 1704240000, Y: 309.75},
		{X: 1704326400, Y: 311.25},
	}
	if diff := cmp.Diff(want, data.Points); diff != "" {
		t.Errorf("Points mismatch (-want +got):\n%s", diff)
	}
	if got := data.Labels[stockview.LabelTitle]; got != "VUG Daily Stock Prices" {
		t.Errorf("title = %q, want %q", got, "VUG Daily Stock Prices")
	}
	if got := data.Labels[stockview.LabelLegend]; got != "VUG Stock Price" {
		t.Errorf("legend = %q, want %q", got, "VUG Stock Price")
	}
}

func TestParseDaily_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"error message", `{"Error Message": "Invalid API call."}`},
		{"rate limit", `{"Note": "Thank you for using Alpha Vantage!"}`},
		{"information", `{"Information": "The demo API key is for demo purposes only."}`},
		{"no series", `{"Meta Data": {"2. Symbol": "VUG"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDaily([]byte(tt.body)); err == nil {
				t.Errorf("ParseDaily() error = nil, want an error")
			}
		})
	}
	if _, err := ParseDaily([]byte(`{}`)); !errors.Is(err, ErrNoSeries) {
		t.Errorf("ParseDaily({}) error = %v, want ErrNoSeries", err)
	}
}

func TestParseDaily_WeeklySeries(t *testing.T) {
	body := `{"Weekly Time Series": {"2024-01-05": {"4. close": "10.5"}}}`
	data, err := ParseDaily([]byte(body))
	if err != nil {
		t.Fatalf("ParseDaily() unexpected error = %v", err)
	}
	if len(data.Points) != 1 || data.Points[0].Y != 10.5 {
		t.Errorf("Points = %v, want one point at 10.5", data.Points)
	}
}

func TestQuery(t *testing.T) {
	q := Query{URL: "https://example.com/", Function: "TIME_SERIES_DAILY", Symbol: "BRK.B", APIKey: "k&y"}
	want := "https://example.com/query?function=TIME_SERIES_DAILY&symbol=BRK.B&apikey=k%26y"
	if got := q.String(); got != want {
		t.Errorf("Query.String() = %q, want %q", got, want)
	}
}

func TestFetchDaily(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/query" || r.URL.Query().Get("symbol") != "VUG" || r.URL.Query().Get("apikey") != "secret" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(dailyResponse))
	}))
	defer srv.Close()

	cfg := stockview.DefaultConfig()
	cfg.URL, cfg.APIKey = srv.URL, "secret"
	c := &Client{Config: cfg, HTTP: srv.Client()}

	data, err := c.FetchDaily(context.Background(), "VUG")
	if err != nil {
		t.Fatalf("FetchDaily() unexpected error = %v", err)
	}
	if len(data.Points) != 3 {
		t.Errorf("FetchDaily() returned %d points, want 3", len(data.Points))
	}

	if _, err := c.FetchDaily(context.Background(), "OTHER"); err == nil {
		t.Errorf("FetchDaily(OTHER) error = nil, want the http error")
	}

	c.Config.APIKey = ""
	if _, err := c.FetchDaily(context.Background(), "VUG"); err == nil {
		t.Errorf("FetchDaily() without key error = nil, want an error")
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hit %d times, want 2", got)
	}
}

func TestDiskCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(dailyResponse))
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: dir}}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		body, err := get(ctx, client, srv.URL+"/query")
		if err != nil {
			t.Fatalf("get() unexpected error = %v", err)
		}
		if string(body) != dailyResponse {
			t.Fatalf("get() body mismatch on call %d", i)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}

	// failures are not cached
	for i := 0; i < 2; i++ {
		if _, err := get(ctx, client, srv.URL+"/missing"); err == nil {
			t.Errorf("get(/missing) error = nil, want an error")
		}
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hit %d times, want 3", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("cache holds %d entries, want 1", len(entries))
	}
}

func TestFetchDaily_Live(t *testing.T) {
	key := os.Getenv("STOCKVIEW_API_KEY")
	if key == "" || testing.Short() {
		t.Skip("STOCKVIEW_API_KEY not set")
	}
	cfg := stockview.DefaultConfig()
	cfg.APIKey = key
	c := &Client{Config: cfg, HTTP: &http.Client{Transport: &diskCache{base: http.DefaultTransport, dir: t.TempDir()}}}
	data, err := c.FetchDaily(context.Background(), "VUG")
	if err != nil {
		t.Fatalf("FetchDaily() unexpected error = %v", err)
	}
	if len(data.Points) == 0 {
		t.Errorf("FetchDaily() returned no prices")
	}
}
