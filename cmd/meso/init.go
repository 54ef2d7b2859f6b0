// ABOUTME: CLI command for first-run initialization.
// ABOUTME: Creates the database and seeds the built-in exercise catalog.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/liftlab/meso/internal/catalog"
	"github.com/liftlab/meso/internal/models"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and exercise catalog",
	Long: `Create the SQLite database and seed the built-in exercise catalog.

Safe to run more than once: exercises already present are left alone, so
custom exercises and logged data survive a re-init.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.SeedExercises(catalog.Default()); err != nil {
			return fmt.Errorf("failed to seed exercises: %w", err)
		}

		if err := repo.SetSetting(models.SettingOnboardingComplete, true); err != nil {
			return fmt.Errorf("failed to record onboarding: %w", err)
		}

		exercises, err := repo.ListExercises(nil)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		color.Green("✓ Initialized")
		fmt.Printf("  data dir: %s\n", cfg.GetDataDir())
		fmt.Printf("  exercises: %d\n", len(exercises))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
