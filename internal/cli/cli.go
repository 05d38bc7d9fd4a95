package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/ramsesgo/internal/app"
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
	flagSet := flag.NewFlagSet("ramsesgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ramsesgo - run a dynamic power-system simulation case.

Removes stale outputs, builds the simulator configuration from a case file,
registers the runtime observables and runs the simulator once.

Usage:
  ramsesgo [options] CASE_PATH

Arguments:
  CASE_PATH
    Path to a .hcl, .yaml or .yml case file.

Environment:
  RAMSES_BIN, RAMSES_LIBDIR, RAMSES_ARGS, RAMSES_CMD_FILE
    Simulator installation; also read from a .env file when present.

Options:
`)
		flagSet.PrintDefaults()
	}

	caseFlag := flagSet.String("case", "", "Path to the case file.")
	cFlag := flagSet.String("c", "", "Path to the case file (shorthand).")
	workDirFlag := flagSet.String("workdir", "", "Directory the simulator runs in. Defaults to the case file's directory.")
	simulatorFlag := flagSet.String("simulator", "", "Simulator executable. Overrides RAMSES_BIN.")
	libDirFlag := flagSet.String("libdir", "", "Simulator library directory. Overrides RAMSES_LIBDIR.")
	cmdFileFlag := flagSet.String("cmd-file", "", "Command file name written into the working directory. Overrides RAMSES_CMD_FILE.")
	envFileFlag := flagSet.String("env-file", "", "Env file to load before reading RAMSES_* (default .env, if present).")
	keepOutputsFlag := flagSet.Bool("keep-outputs", false, "Do not remove stale outputs before running.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the configured case and command file; do not clean up or run.")
	printFormatFlag := flagSet.String("print-format", "json", "Dry-run output format. Options: 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *caseFlag != "" {
		path = *caseFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Case path determined.", "path", path)

	if path == "" {
		slog.Debug("No case path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 || (flagSet.NArg() > 0 && (*caseFlag != "" || *cFlag != "")) {
		return nil, false, &ExitError{Code: 2, Message: "only one case file can be run at a time"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CasePath:    path,
		WorkDir:     *workDirFlag,
		Simulator:   *simulatorFlag,
		LibDir:      *libDirFlag,
		CmdFile:     *cmdFileFlag,
		EnvFile:     *envFileFlag,
		KeepOutputs: *keepOutputsFlag,
		DryRun:      *dryRunFlag,
		PrintFormat: strings.ToLower(*printFormatFlag),
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
