// Package cli implements the cobra-based CLI commands for renamer.
//
// The root command performs a rename run; its files are split by concern:
// run.go drives the interactive rename flow and config.go implements the
// "config" subcommands. This file defines the root command itself, the
// global flags and the error-to-exit-code translation.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/renamer/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput switches report messages to JSON lines and errors to a
	// JSON object on stderr.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// configPath names an explicit configuration file (--config).
	configPath string
)

// logger is the diagnostic logger shared by all commands. It is rebuilt in
// PersistentPreRun once the --verbose flag is known.
var logger = newLogger(os.Stderr, false)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a pure command group, the root command does real work: invoked
// with up to three positional arguments it runs a rename. Missing
// arguments are prompted for.
func NewRootCommand() *cobra.Command {
	flags := &renameFlags{}

	rootCmd := &cobra.Command{
		Use:   "renamer [from] [to] [directory]",
		Short: "Rename files, directories and file contents across a directory tree",
		Long: `renamer replaces every occurrence of one string with another across a
directory tree: inside file contents, in file names and in directory names.

Directories are renamed last, deepest first, so nested matches never lose
their path. Skip rules, case sensitivity and full-word matching are read from
a configuration file (see "renamer config show").

Examples:
  renamer cat dog ./src
  renamer --full-word --match-case Cat Dog .
  renamer --yes --json old new ./project`,

		Args: cobra.MaximumNArgs(3),

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Configuration file (default: $RENAMER_CONFIG, ./config.json, ./renamer.{json,yaml,yml}, user config dir)")

	flags.register(rootCmd)

	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error (unknown flag, bad argument count) exits with code 1.
		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode because stdout carries the
		// report stream.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// newLogger builds the stderr logger: debug level when verbose, warnings
// only otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "renamer"})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// VerboseLog prints a debug message when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
