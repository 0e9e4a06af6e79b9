package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/renamer/internal/config"
	"github.com/shinji-kodama/renamer/internal/model"
	"github.com/shinji-kodama/renamer/internal/prompt"
	"github.com/shinji-kodama/renamer/internal/rename"
	"github.com/shinji-kodama/renamer/internal/report"
)

// renameFlags holds the flag values for a rename run.
// The toggles override the loaded configuration only when set explicitly,
// so "--rename-files=false" can switch off a value the file turned on.
type renameFlags struct {
	yes bool

	matchCase         bool
	fullWord          bool
	renameFiles       bool
	renameDirectories bool
	renameContent     bool
	open              bool
}

// register binds the rename flags to cmd.
func (f *renameFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&f.matchCase, "match-case", false, "Match case when searching (overrides matchCase)")
	cmd.Flags().BoolVar(&f.fullWord, "full-word", false, "Only replace whole words (overrides fullWord)")
	cmd.Flags().BoolVar(&f.renameFiles, "rename-files", false, "Rename matching files (overrides renameFiles)")
	cmd.Flags().BoolVar(&f.renameDirectories, "rename-directories", false, "Rename matching directories (overrides renameDirectories)")
	cmd.Flags().BoolVar(&f.renameContent, "rename-content", false, "Replace inside file contents (overrides renameWithinFileContent)")
	cmd.Flags().BoolVar(&f.open, "open", false, "Open the directory when done (overrides openDirectoryAfter)")
}

// apply copies every explicitly set flag onto cfg.
func (f *renameFlags) apply(cmd *cobra.Command, cfg *config.Configuration) {
	overrides := []struct {
		name   string
		value  bool
		target *bool
	}{
		{"match-case", f.matchCase, &cfg.MatchCase},
		{"full-word", f.fullWord, &cfg.FullWord},
		{"rename-files", f.renameFiles, &cfg.RenameFiles},
		{"rename-directories", f.renameDirectories, &cfg.RenameDirectories},
		{"rename-content", f.renameContent, &cfg.RenameWithinFileContent},
		{"open", f.open, &cfg.OpenDirectoryAfter},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			*o.target = o.value
			VerboseLog("Flag --%s overrides configuration: %t", o.name, o.value)
		}
	}
}

// runRename is the main logic of the root command. It resolves the
// configuration, collects any missing argument, asks for confirmation and
// hands everything to the rename engine.
func runRename(cmd *cobra.Command, args []string, flags *renameFlags) error {
	// Step 1: Load the configuration and apply flag overrides.
	cfg, source, err := config.Resolve(configPath)
	if err != nil {
		return err // Resolve already returns CLIError with ExitConfigError
	}
	if source == "" {
		VerboseLog("No configuration file found, using defaults")
	} else {
		VerboseLog("Using configuration file %s", source)
	}
	flags.apply(cmd, cfg)

	// Prompts go to stderr in JSON mode so stdout stays machine-readable.
	promptOut := cmd.OutOrStdout()
	if IsJSONOutput() {
		promptOut = cmd.ErrOrStderr()
	}
	p := newPrompter(cmd.InOrStdin(), promptOut)

	// Step 2: Collect from, to and the directory. Positional arguments
	// come in the order from, to, directory.
	from, to, dir, err := collectArguments(p, promptOut, args)
	if err != nil {
		return err
	}
	if from == to {
		return model.NewCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("from and to must differ (both are %q)", from))
	}

	// Step 3: Run the engine with the chosen reporter and gate.
	var reporter rename.Reporter
	if IsJSONOutput() {
		reporter = report.NewJSON(cmd.OutOrStdout())
	} else {
		reporter = report.NewConsole(cmd.OutOrStdout())
	}

	var promptErr error
	env := rename.Env{
		Reporter: reporter,
		Logger:   logger,
	}
	if !flags.yes {
		env.Confirm = func(preview model.Message) bool {
			ok, err := p.Confirm("Proceed with renaming?", preview.Content())
			if err != nil {
				promptErr = err
				return true
			}
			if !ok {
				fmt.Fprintln(promptOut, "Bailing...")
			}
			return !ok
		}
	}

	summary, err := rename.Run(from, to, dir, *cfg, env)
	if err != nil {
		return engineError(err)
	}
	if summary.Aborted {
		if promptErr != nil && !errors.Is(promptErr, prompt.ErrAborted) {
			return model.WrapCLIError(model.ExitGeneralError, "confirmation failed", promptErr)
		}
		return model.NewCLIError(model.ExitUserCancelled, "renaming cancelled")
	}

	VerboseLog("Run finished: %d occurrences, %d directories, %d files",
		summary.Occurrences, summary.Directories, summary.Files)
	return nil
}

// collectArguments returns from, to and the directory, prompting in that
// order for the ones not given on the command line. A prompted directory
// that does not exist is asked for again; an empty answer means the working
// directory.
func collectArguments(p prompt.Prompter, out io.Writer, args []string) (from, to, dir string, err error) {
	if len(args) > 0 {
		from = args[0]
	} else if from, err = p.Input("From"); err != nil {
		return "", "", "", promptError(err)
	}
	if from == "" {
		return "", "", "", model.NewCLIError(model.ExitInvalidArgument, "from must be specified")
	}

	if len(args) > 1 {
		to = args[1]
	} else if to, err = p.Input("To"); err != nil {
		return "", "", "", promptError(err)
	}

	if len(args) > 2 {
		return from, to, args[2], nil
	}
	for {
		answer, err := p.Input("Directory (empty for the current one)")
		if err != nil {
			return "", "", "", promptError(err)
		}
		dir = strings.TrimSpace(answer)
		if dir == "" {
			dir = "."
		}
		if isDirectory(dir) {
			return from, to, dir, nil
		}
		fmt.Fprintln(out, "Directory doesn't exist!")
	}
}

// promptError converts a prompt failure into a CLIError.
func promptError(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		return model.WrapCLIError(model.ExitUserCancelled, "input cancelled", err)
	}
	return model.WrapCLIError(model.ExitGeneralError, "failed to read input", err)
}

// engineError maps the precondition errors of rename.Run to exit codes.
func engineError(err error) error {
	switch {
	case errors.Is(err, rename.ErrNotFound):
		return model.WrapCLIError(model.ExitDirectoryNotFound, "directory not found", err)
	case errors.Is(err, rename.ErrInvalidArgument):
		return model.WrapCLIError(model.ExitInvalidArgument, "invalid argument", err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, "rename failed", err)
	}
}

// newPrompter uses interactive forms when both streams are terminals and
// line-based prompts otherwise (pipes, tests).
func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK {
		return prompt.New(inFile, outFile)
	}
	return prompt.NewLine(in, out)
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
