package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/estimate"
	"github.com/google/subcommands"
)

type estimateCmd struct {
	src         source
	script      string
	interpreter string
	venv        string
	packages    string
	output      string
	chart       chartOptions
}

func (*estimateCmd) Name() string     { return "estimate" }
func (*estimateCmd) Synopsis() string { return "runs an estimation script over the prices" }
func (*estimateCmd) Usage() string {
	return `stockview estimate [-symbol <ticker> | -data <file.csv>] -script <script.py> [-o <chart>] [-- <args...>]

  Writes the prices to a temporary CSV file and runs:

    python3 <script.py> <data.csv> <args...>

  The script output is printed. When the script announces an estimate
  ("Estimate: Yes" and "Output saved to: <file.csv>"), the estimate is
  overlaid on the chart written with -o.

  With -venv, the script runs in that python virtual environment, created
  with -packages installed when missing. See 'stockview topic estimate'.
`
}

func (c *estimateCmd) SetFlags(f *flag.FlagSet) {
	c.src.SetFlags(f)
	f.StringVar(&c.script, "script", "", "Estimation script to run.")
	f.StringVar(&c.interpreter, "interpreter", estimate.DefaultInterpreter, "Interpreter running the script.")
	f.StringVar(&c.venv, "venv", "", "Python virtual environment directory.")
	f.StringVar(&c.packages, "packages", "numpy,pandas", "Comma separated packages to install in a new virtual environment.")
	f.StringVar(&c.output, "o", "", "Chart of the prices and the estimate, .png or .svg.")
	f.IntVar(&c.chart.width, "width", 800, "Image width in pixels.")
	f.IntVar(&c.chart.height, "height", 600, "Image height in pixels.")
	f.BoolVar(&c.chart.numericX, "numeric-x", false, "Label the horizontal axis with raw values instead of dates.")
}

func (c *estimateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.script == "" {
		fmt.Fprintf(os.Stderr, "Error: -script is required\n")
		return subcommands.ExitUsageError
	}
	data, err := c.src.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	dataFile, err := stockview.CreateTempCSV("", data.Points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing prices: %v\n", err)
		return subcommands.ExitFailure
	}

	l := estimate.Launcher{
		Interpreter: c.interpreter,
		Script:      c.script,
		Args:        f.Args(),
		Venv:        c.venv,
		Packages:    splitList(c.packages),
	}
	res, err := l.Run(ctx, dataFile)
	fmt.Print(res.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if res.ExitCode != 0 {
		fmt.Fprintf(os.Stderr, "Warning: script exited with code %d\n", res.ExitCode)
	}

	est, err := res.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading estimate: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(est) > 0 {
		log.Printf("estimate: %d samples in %s", len(est), res.EstimateFile)
	}

	if c.output != "" {
		if err := writeChart(c.output, c.chart, data, est); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
	}
	if res.ExitCode != 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// splitList splits a comma separated list, dropping empty items.
func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
