package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/stockview/estimate"
	"github.com/etnz/stockview/gui"
	"github.com/google/subcommands"
)

type viewCmd struct {
	symbol   string
	script   string
	args     string
	venv     string
	packages string
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "opens the chart window" }
func (*viewCmd) Usage() string {
	return `stockview view [-symbol <ticker>] [-script <script.py>] [-args "<args>"]

  Opens a window to chart the prices of a ticker and overlay the estimate
  of a script.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", gui.DefaultSymbol, "Initial ticker symbol.")
	f.StringVar(&c.script, "script", "", "Initial estimation script.")
	f.StringVar(&c.args, "args", "", "Initial script arguments, blank separated.")
	f.StringVar(&c.venv, "venv", "", "Python virtual environment directory.")
	f.StringVar(&c.packages, "packages", "numpy,pandas", "Comma separated packages to install in a new virtual environment.")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("warning: %v, fetching will fail", err)
	}
	gui.Run(gui.Options{
		Fetcher: newClient(cfg),
		Symbol:  c.symbol,
		Script:  c.script,
		Args:    c.args,
		Launcher: estimate.Launcher{
			Venv:     c.venv,
			Packages: splitList(c.packages),
		},
	})
	return subcommands.ExitSuccess
}
