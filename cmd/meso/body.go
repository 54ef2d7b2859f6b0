// ABOUTME: CLI commands for body weight tracking.
// ABOUTME: Supports add and list subcommands.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/liftlab/meso/internal/models"
	"github.com/spf13/cobra"
)

var (
	bodyFat   float64
	bodyDate  string
	bodyNotes string
	bodyLimit int
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Track body weight",
	Long: `Record and review body weight and body fat measurements.

Examples:
  meso body add 82.5
  meso body add 82.5 --fat 17.2 --date 2026-08-29
  meso body list`,
}

var bodyAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a body weight measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil || weight <= 0 {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		m := models.NewBodyMetric(weight)
		if cmd.Flags().Changed("fat") {
			m.WithBodyFat(bodyFat)
		}
		if bodyDate != "" {
			if _, err := time.Parse(models.DateFormat, bodyDate); err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", bodyDate)
			}
			m.WithDate(bodyDate)
		}
		if bodyNotes != "" {
			m.Notes = bodyNotes
		}

		if err := repo.AddBodyMetric(m); err != nil {
			return fmt.Errorf("failed to add body metric: %w", err)
		}

		color.Green("✓ Recorded %.1f", weight)
		return nil
	},
}

var bodyListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List body weight measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, err := repo.ListBodyMetrics(bodyLimit)
		if err != nil {
			return fmt.Errorf("failed to list body metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No measurements recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range metrics {
			fat := ""
			if m.BodyFat != nil {
				fat = fmt.Sprintf("  %.1f%% bf", *m.BodyFat)
			}
			notes := ""
			if m.Notes != "" {
				notes = faint.Sprintf(" (%s)", m.Notes)
			}
			fmt.Printf("%s  %.1f%s%s\n", m.Date, m.Weight, fat, notes)
		}
		return nil
	},
}

func init() {
	bodyAddCmd.Flags().Float64Var(&bodyFat, "fat", 0, "body fat percentage")
	bodyAddCmd.Flags().StringVar(&bodyDate, "date", "", "measurement date (YYYY-MM-DD)")
	bodyAddCmd.Flags().StringVar(&bodyNotes, "notes", "", "notes")
	bodyListCmd.Flags().IntVarP(&bodyLimit, "limit", "n", 20, "number of measurements to show")

	bodyCmd.AddCommand(bodyAddCmd)
	bodyCmd.AddCommand(bodyListCmd)
	rootCmd.AddCommand(bodyCmd)
}
