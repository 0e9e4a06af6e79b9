package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/renamer/internal/config"
)

// defaultConfigFile is where "config init" writes when no path is given.
// It is the first local file the loader looks for.
const defaultConfigFile = "config.json"

// NewConfigCommand creates the "config" command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration a rename run would use",
		Long: `Print the resolved configuration and the file it was loaded from.

Lookup order: --config, $RENAMER_CONFIG, ./config.json, ./renamer.json,
./renamer.yaml, ./renamer.yml, then renamer/config.json in the user
configuration directory. Built-in defaults apply when none exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := config.Resolve(configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if IsJSONOutput() {
				data, _ := json.MarshalIndent(struct {
					Source        string                `json:"source"`
					Configuration *config.Configuration `json:"configuration"`
				}{Source: source, Configuration: cfg}, "", "  ")
				fmt.Fprintln(out, string(data))
				return nil
			}

			if source == "" {
				source = "(built-in defaults)"
			}
			fmt.Fprintf(out, "Source: %s\n\n", source)
			fmt.Fprint(out, cfg.String())
			return nil
		},
	}
}

// configInitFlags holds the flag values for the config init command.
type configInitFlags struct {
	force bool
}

func newConfigInitCommand() *cobra.Command {
	flags := &configInitFlags{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file",
		Long: `Write the default configuration to path (default: ./config.json).
A .yaml or .yml extension selects YAML, anything else JSON.

Examples:
  renamer config init
  renamer config init ~/.config/renamer/config.json
  renamer config init renamer.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			if err := config.Save(path, config.Default(), flags.force); err != nil {
				return err
			}
			VerboseLog("Wrote default configuration to %s", path)

			out := cmd.OutOrStdout()
			if IsJSONOutput() {
				data, _ := json.Marshal(map[string]string{"path": path})
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintf(out, "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing file")

	return cmd
}
