package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// fileFlags are the flags naming files, completed with matching files.
var fileFlags = map[string]string{
	"data":     "*.csv",
	"estimate": "*.csv",
	"script":   "*.py",
	"html":     "*.html",
	"o":        "*",
	"venv":     "",
	"dir":      "",
}

// Completion describes the command line for shell completion, from the
// global flags and the flags of every subcommand.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	for _, c := range Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		pattern, isFile := fileFlags[f.Name]
		switch {
		case isFile && pattern == "":
			flags[f.Name] = predict.Dirs("*")
		case isFile:
			flags[f.Name] = predict.Files(pattern)
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}
