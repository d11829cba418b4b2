package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/google/subcommands"
)

type exportCmd struct {
	src      source
	estimate string
	output   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exports prices to an Excel workbook" }
func (*exportCmd) Usage() string {
	return `stockview export [-symbol <ticker> | -data <file.csv>] [-estimate <file.csv>] -o <file.xlsx>

  Writes the prices to a "Prices" sheet, and the estimate, when given, to an
  "Estimate" sheet.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.src.SetFlags(f)
	f.StringVar(&c.estimate, "estimate", "", "CSV file of an estimate series.")
	f.StringVar(&c.output, "o", "prices.xlsx", "Output workbook.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := c.src.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var est chart.Series
	if c.estimate != "" {
		if est, err = readCSV(c.estimate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	var buf bytes.Buffer
	if err := stockview.EncodeXLSX(&buf, data.Points, est); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding workbook: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully exported %d prices to %s\n", len(data.Points), c.output)
	return subcommands.ExitSuccess
}
