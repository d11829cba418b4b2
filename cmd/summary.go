package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/etnz/stockview/renderer"
	"github.com/etnz/stockview/surface"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	src      source
	estimate string
	currency string
	html     string
	raw      bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a price summary" }
func (*summaryCmd) Usage() string {
	return `stockview summary [-symbol <ticker> | -data <file.csv>] [-estimate <file.csv>] [-html <page.html>]

  Displays the first, last, lowest and highest closes, the change over the
  period and the most recent closes. With -html, writes a page with the
  chart and the summary instead.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.src.SetFlags(f)
	f.StringVar(&c.estimate, "estimate", "", "CSV file of an estimate series.")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the prices.")
	f.StringVar(&c.html, "html", "", "Write an HTML page to this file.")
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal formatting.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.SummaryMarkdown(data, stockview.Summarize(data.Symbol, data.Points, c.currency), est)
	if c.html == "" {
		printMarkdown(md, c.raw)
		return subcommands.ExitSuccess
	}

	opts := chartOptions{width: 800, height: 600}
	var svg bytes.Buffer
	cmds := data.Chart(opts.config(), float64(opts.width), float64(opts.height), est)
	if err := surface.SVG(&svg, opts.width, opts.height, cmds); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	var page bytes.Buffer
	if err := renderer.HTML(&page, data.Labels[stockview.LabelTitle], md, svg.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering page: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.html, page.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.html, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
