package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write a complete example input file (YAML)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.NewInputParser().SaveExampleInput(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", args[0])
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings [file]",
	Short: "Write the effective settings as TOML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		if err := config.SaveSettings(args[0], settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd, settingsCmd)
}
