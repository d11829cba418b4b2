// Package cmd implements the stockview command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/alphavantage"
	"github.com/etnz/stockview/gui"
	"github.com/etnz/stockview/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// Commands returns a fresh instance of every subcommand.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&fetchCmd{},
		&plotCmd{},
		&summaryCmd{},
		&exportCmd{},
		&estimateCmd{},
		&viewCmd{},
		&topicCmd{},
		&cleanCmd{},
	}
}

var groups = map[string]string{
	"fetch":    "data",
	"plot":     "data",
	"summary":  "data",
	"export":   "data",
	"estimate": "estimate",
	"view":     "estimate",
	"topic":    "help",
	"clean":    "help",
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	apiKey   = flag.String("api-key", "", "Alpha Vantage API key. Overrides STOCKVIEW_API_KEY and stockview.env.")
	apiURL   = flag.String("url", "", "Base address of the time series API.")
	function = flag.String("function", "", "Time series function of the API.")
	Verbose  = flag.Bool("v", false, "Log progress to stderr.")
)

// loadConfig resolves the API configuration: flags first, then the
// environment, then the project's stockview.env, then the defaults.
func loadConfig() (stockview.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return stockview.Config{}, err
	}
	cfg, err := stockview.LoadConfig(dir)
	if err != nil {
		return cfg, err
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *apiURL != "" {
		cfg.URL = *apiURL
	}
	if *function != "" {
		cfg.Function = *function
	}
	return cfg, nil
}

// newClient is the price API client of the commands.
var newClient = func(cfg stockview.Config) *alphavantage.Client { return alphavantage.New(cfg) }

// source selects the prices a command works on: a CSV file, or a symbol to
// fetch.
type source struct {
	symbol string
	data   string
}

func (s *source) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.symbol, "symbol", "", "Ticker symbol to fetch (default \""+gui.DefaultSymbol+"\"), or to name the -data prices.")
	f.StringVar(&s.data, "data", "", "Read prices from this CSV file instead of fetching them.")
}

// load reads the CSV file when set, or fetches the symbol. Prices read from
// a file are named after the file unless a symbol is given.
func (s *source) load(ctx context.Context) (stockview.StockData, error) {
	if s.data == "" {
		cfg, err := loadConfig()
		if err != nil {
			return stockview.StockData{}, err
		}
		symbol := s.symbol
		if symbol == "" {
			symbol = gui.DefaultSymbol
		}
		return newClient(cfg).FetchDaily(ctx, symbol)
	}

	points, err := readCSV(s.data)
	if err != nil {
		return stockview.StockData{}, err
	}
	symbol := s.symbol
	if symbol == "" {
		symbol = strings.TrimSuffix(filepath.Base(s.data), filepath.Ext(s.data))
	}
	return stockview.StockData{
		Symbol: symbol,
		Points: points,
		Labels: stockview.DefaultLabels(symbol),
	}, nil
}

// printMarkdown prints md for the terminal, or as is when raw.
func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Print(md)
		return
	}
	out, err := renderer.Terminal(md, 80)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
