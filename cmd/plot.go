package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockview/chart"
	"github.com/google/subcommands"
)

type plotCmd struct {
	src      source
	estimate string
	output   string
	chart    chartOptions
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "renders a price chart as PNG or SVG" }
func (*plotCmd) Usage() string {
	return `stockview plot [-symbol <ticker> | -data <file.csv>] [-estimate <file.csv>] -o <chart.png|chart.svg>

  Renders the daily close prices as a line chart. An estimate series, as
  produced by 'stockview estimate', is overlaid in red when given.

Usage Examples:
# Chart the prices of a CSV file.
$ stockview plot -data prices.csv -o chart.svg
`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) {
	c.src.SetFlags(f)
	f.StringVar(&c.estimate, "estimate", "", "CSV file of an estimate series to overlay.")
	f.StringVar(&c.output, "o", "chart.png", "Output image, .png or .svg.")
	f.IntVar(&c.chart.width, "width", 800, "Image width in pixels.")
	f.IntVar(&c.chart.height, "height", 600, "Image height in pixels.")
	f.BoolVar(&c.chart.numericX, "numeric-x", false, "Label the horizontal axis with raw values instead of dates.")
}

func (c *plotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := writeChart(c.output, c.chart, data, est); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
