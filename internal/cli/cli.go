// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("stackc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
stackc - Composes the coding-assistant deployment graph from typed options.

Usage:
  stackc [options] [OPTIONS_PATH]

Arguments:
  OPTIONS_PATH
    Path to an .hcl file with option values. Omit to compose with defaults.

Options:
`)
		flagSet.PrintDefaults()
	}

	optionsFlag := flagSet.String("options", "", "Path to the options file.")
	fFlag := flagSet.String("f", "", "Path to the options file (shorthand).")
	outputFlag := flagSet.String("o", "", "Write the YAML graph to this file instead of stdout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	optionsPath := *optionsFlag
	if optionsPath == "" {
		optionsPath = *fFlag
	}
	if optionsPath == "" && flagSet.NArg() > 0 {
		optionsPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one OPTIONS_PATH argument is allowed"}
	}

	cfg, err := app.NewConfig(app.Config{
		OptionsPath: optionsPath,
		OutputPath:  *outputFlag,
		LogFormat:   *logFormatFlag,
		LogLevel:    *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
