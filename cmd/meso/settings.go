// ABOUTME: CLI commands for user settings.
// ABOUTME: Settings are JSON-encoded key/value pairs in the database.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/storage"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage settings",
	Long: `Get and set user settings.

KNOWN KEYS:

  weightUnit            "kg" or "lbs" (display only; stored values are unitless)
  restTimerDuration     seconds between sets
  autoStartRestTimer    true/false

Examples:
  meso settings set weightUnit kg
  meso settings get weightUnit
  meso settings list`,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if key == models.SettingWeightUnit && value != "kg" && value != "lbs" {
			return fmt.Errorf("weightUnit must be kg or lbs")
		}

		if err := repo.SetSetting(key, value); err != nil {
			return err
		}

		color.Green("✓ %s = %s", key, value)
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value any
		if err := repo.GetSetting(args[0], &value); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Printf("%s is not set\n", args[0])
				return nil
			}
			return err
		}

		fmt.Printf("%s = %v\n", args[0], value)
		return nil
	},
}

var settingsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := repo.ListSettings()
		if err != nil {
			return err
		}

		if len(settings) == 0 {
			fmt.Println("No settings.")
			return nil
		}

		for _, s := range settings {
			fmt.Printf("%s = %s\n", s.Key, s.Value)
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsListCmd)
	rootCmd.AddCommand(settingsCmd)
}
