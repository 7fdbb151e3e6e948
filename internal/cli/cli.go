package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/swork/digraph-animator/internal/app"
	"github.com/swork/digraph-animator/internal/config"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("digraph-animator", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
digraph-animator - Normalizes annotation records into a validated graph model.

Usage:
  digraph-animator [options] INPUT

Arguments:
  INPUT
    Path to a JSON or YAML file holding an array of records, or "-" for stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	cFlag := flagSet.String("c", "", "Path to an HCL configuration file (shorthand).")
	formatFlag := flagSet.String("format", "", "Input format. Options: 'json' or 'yaml'. Defaults to the file extension.")
	outputFlag := flagSet.String("output", "", "Write the rendered model to this file instead of stdout.")
	outputFormatFlag := flagSet.String("output-format", "json", "Output format. Options: 'json' or 'yaml'.")
	summaryFlag := flagSet.Bool("summary", false, "Print item counts instead of the rendered model.")
	traceFlag := flagSet.Bool("trace", false, "Log a span for every pipeline pass (needs -log-level debug).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one INPUT argument"}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := app.Config{
		InputPath:    flagSet.Arg(0),
		InputFormat:  strings.ToLower(*formatFlag),
		OutputPath:   *outputFlag,
		OutputFormat: strings.ToLower(*outputFormatFlag),
		Summary:      *summaryFlag,
		Trace:        *traceFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}
	if configPath != "" {
		file, err := config.Load(context.Background(), configPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyFile(&cfg, file, set)
		slog.Debug("Configuration file applied.", "path", configPath)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// applyFile fills every setting not given on the command line from the
// configuration file.
func applyFile(cfg *app.Config, file *config.File, set map[string]bool) {
	if !set["format"] && file.InputFormat != "" {
		cfg.InputFormat = strings.ToLower(file.InputFormat)
	}
	if !set["log-format"] && file.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(file.LogFormat)
	}
	if !set["log-level"] && file.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(file.LogLevel)
	}
	if len(file.Compatibility) > 0 {
		cfg.Rules = file.Rules()
	}
}
