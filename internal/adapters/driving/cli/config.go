package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change eduingest settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}

		settings := settingsService.Get()
		cmd.Printf("data dir:   %s\n", orDefault(settings.DataDir, "(default)"))
		cmd.Printf("output dir: %s\n", orDefault(settings.OutputDir, "(disabled)"))
		cmd.Printf("extensions: %v\n", settings.Extensions)
		return nil
	},
}

var configSetOutputCmd = &cobra.Command{
	Use:   "set-output-dir <dir>",
	Short: "Set the extraction artifact directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		return settingsService.SetOutputDir(args[0])
	},
}

var configSetDataCmd = &cobra.Command{
	Use:   "set-data-dir <dir>",
	Short: "Set the ledger database directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		return settingsService.SetDataDir(args[0])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetOutputCmd)
	configCmd.AddCommand(configSetDataCmd)
	rootCmd.AddCommand(configCmd)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
