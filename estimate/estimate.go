// Package estimate runs external estimation scripts over a price series.
//
// A script is called as
//
//	<interpreter> <script> <data.csv> [args...]
//
// where data.csv is the "timestamp,price" hand-off file. Whatever the script
// prints is reported back. A script producing an estimate series announces
// it with the two lines
//
//	Estimate: Yes
//	Output saved to: <path of a timestamp,price csv>
package estimate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
)

// DefaultInterpreter runs scripts when no virtual environment is set.
const DefaultInterpreter = "python3"

const (
	estimateMarker = "Estimate: Yes"
	outputPrefix   = "Output saved to:"
)

// Launcher runs one estimation script.
type Launcher struct {
	Interpreter string   // DefaultInterpreter when empty
	Script      string   // path of the script
	Args        []string // extra arguments, after the data file
	Dir         string   // working directory, the current one when empty

	// Venv is the directory of a python virtual environment to run the
	// script in. It is created, and Packages installed in it, when missing.
	Venv     string
	Packages []string
}

// Result is the outcome of a script run.
type Result struct {
	Output       string // combined stdout and stderr
	ExitCode     int
	EstimateFile string // path of the estimate series, if the script announced one
}

// Run executes the script over dataFile.
//
// A script exiting with a non-zero status is not an error: the status is in
// the Result, as is its output. Errors report a script that could not be run.
func (l *Launcher) Run(ctx context.Context, dataFile string) (Result, error) {
	if l.Script == "" {
		return Result{}, errors.New("no script to run")
	}
	interpreter, err := l.interpreter(ctx)
	if err != nil {
		return Result{}, err
	}

	args := append([]string{l.Script, dataFile}, l.Args...)
	cmd := exec.CommandContext(ctx, interpreter, args...)
	cmd.Dir = l.Dir
	var out bytes.Buffer
	cmd.Stdout, cmd.Stderr = &out, &out

	log.Printf("running %s %s", interpreter, strings.Join(args, " "))
	err = cmd.Run()
	res := Result{Output: out.String()}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	case err != nil:
		return res, fmt.Errorf("cannot run %q: %w", l.Script, err)
	}
	res.EstimateFile = ParseOutput(res.Output)
	if res.EstimateFile != "" && !filepath.IsAbs(res.EstimateFile) && l.Dir != "" {
		res.EstimateFile = filepath.Join(l.Dir, res.EstimateFile)
	}
	return res, nil
}

// interpreter returns the program to run the script with, preparing the
// virtual environment if needed.
func (l *Launcher) interpreter(ctx context.Context) (string, error) {
	if l.Venv == "" {
		if l.Interpreter == "" {
			return DefaultInterpreter, nil
		}
		return l.Interpreter, nil
	}
	python := venvPython(l.Venv)
	if _, err := os.Stat(python); err == nil {
		return python, nil
	}

	base := l.Interpreter
	if base == "" {
		base = DefaultInterpreter
	}
	log.Printf("creating virtual environment in %s", l.Venv)
	if out, err := exec.CommandContext(ctx, base, "-m", "venv", l.Venv).CombinedOutput(); err != nil {
		return "", fmt.Errorf("cannot create virtual environment %q: %w\n%s", l.Venv, err, out)
	}
	if len(l.Packages) > 0 {
		log.Printf("installing %s", strings.Join(l.Packages, ", "))
		args := append([]string{"-m", "pip", "install"}, l.Packages...)
		if out, err := exec.CommandContext(ctx, python, args...).CombinedOutput(); err != nil {
			return "", fmt.Errorf("cannot install %v: %w\n%s", l.Packages, err, out)
		}
	}
	return python, nil
}

// venvPython returns the python executable of a virtual environment.
func venvPython(venv string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venv, "Scripts", "python.exe")
	}
	return filepath.Join(venv, "bin", "python")
}

// ParseOutput returns the estimate file announced in a script output, or ""
// when the output does not announce one.
func ParseOutput(output string) string {
	announced, path := false, ""
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == estimateMarker:
			announced = true
		case strings.HasPrefix(line, outputPrefix):
			path = strings.TrimSpace(strings.TrimPrefix(line, outputPrefix))
		}
	}
	if !announced {
		return ""
	}
	return path
}

// Load reads the estimate series of a run. It returns no series and no error
// when the run announced none.
func (r Result) Load() (chart.Series, error) {
	if r.EstimateFile == "" {
		return nil, nil
	}
	f, err := os.Open(r.EstimateFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return stockview.DecodeCSV(f)
}
