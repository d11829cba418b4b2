package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment passed to extensions.
const (
	EnvAPIKey   = "STOCKVIEW_API_KEY"
	EnvURL      = "STOCKVIEW_URL"
	EnvFunction = "STOCKVIEW_FUNCTION"
	EnvVerbose  = "STOCKVIEW_VERBOSE"
)

// RunExtension attempts to find and execute an external stockview-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the resolved API configuration in its environment.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "stockview-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvAPIKey+"="+cfg.APIKey,
		EnvURL+"="+cfg.URL,
		EnvFunction+"="+cfg.Function,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
