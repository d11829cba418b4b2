package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockview"
	"github.com/google/subcommands"
)

type cleanCmd struct {
	dir string
}

func (*cleanCmd) Name() string     { return "clean" }
func (*cleanCmd) Synopsis() string { return "removes temporary files" }
func (*cleanCmd) Usage() string {
	return `stockview clean [-dir <dir>]

  Removes the files whose name contains "stockview" from the temporary
  directory: hand-off CSV files and cached API responses.
`
}

func (c *cleanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", os.TempDir(), "Directory to clean.")
}

func (c *cleanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	n, err := stockview.RemoveTempFiles(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cleaning %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d files removed from %s\n", n, c.dir)
	return subcommands.ExitSuccess
}
