package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
)

type fetchCmd struct {
	src    source
	output string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches daily close prices into a CSV file" }
func (*fetchCmd) Usage() string {
	return `stockview fetch [-symbol <ticker>] [-o <file.csv>]

  Fetches the daily close prices of a ticker and writes them as a
  "timestamp,price" CSV file. Without -o, a temporary file is created; its
  path is printed.

  Responses are cached for the day, see 'stockview topic config'.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.src.symbol, "symbol", "VUG", "Ticker symbol to fetch.")
	f.StringVar(&c.output, "o", "", "Output CSV file. Defaults to a new temporary file.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := c.src.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	path, err := writeCSV(c.output, data.Points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("%s: %d daily closes", data.Symbol, len(data.Points))
	fmt.Println(path)
	return subcommands.ExitSuccess
}
