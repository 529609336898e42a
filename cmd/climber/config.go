package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate config files",
	Long: `Config files only need the keys they change; everything else
keeps its default. Files are looked up in this order:
  --config path, ~/.climber/configs/climber.yaml, ./configs/climber.yaml

Examples:
  climber config defaults > ~/.climber/configs/climber.yaml
  climber config validate ./my-climber.yaml`,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default config",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check config files against the schema",
	Args:  cobra.MinimumNArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err == nil {
			err = config.Validate(data)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK    %s\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
