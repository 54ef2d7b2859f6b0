// ABOUTME: CLI command for next-session suggestions.
// ABOUTME: Runs the progression engine over the active programme's prescriptions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/liftlab/meso/internal/progression"
	"github.com/spf13/cobra"
)

var suggestDay int

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show next-session targets",
	Long: `Show suggested weight and reps for the active programme, based on your
last performance on each exercise and this week's RIR target.

Examples:
  meso suggest            # all training days
  meso suggest --day 2    # one day only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		programme, err := repo.ActiveProgramme()
		if err != nil {
			return fmt.Errorf("no active programme")
		}

		templates, err := repo.ListTemplates(programme.ID)
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		engine := progression.NewEngine(repo, logger)

		fmt.Printf("%s week %d of %d, target %d RIR\n\n",
			color.New(color.Bold).Sprint(programme.Name),
			programme.CurrentWeek, programme.DurationWeeks,
			progression.TargetRIR(programme.RIRTargets, programme.CurrentWeek, programme.DurationWeeks))

		for _, t := range templates {
			if suggestDay > 0 && t.DayNumber != suggestDay {
				continue
			}

			fmt.Printf("Day %d: %s\n", t.DayNumber, t.Name)
			exercises, err := repo.ListTemplateExercises(t.ID)
			if err != nil {
				return fmt.Errorf("failed to list template exercises: %w", err)
			}

			for _, te := range exercises {
				e, err := repo.GetExercise(te.ExerciseID)
				if err != nil {
					return fmt.Errorf("failed to load exercise: %w", err)
				}

				s := engine.Suggest(programme, te)
				if !s.HasHistory {
					fmt.Printf("  %s %dx%d-%d  %s\n",
						padRight(e.Name, 32), te.TargetSets, te.MinReps, te.MaxReps,
						color.New(color.Faint).Sprint(s.Message))
					continue
				}

				last := fmt.Sprintf("last %.1f x %d", s.LastWeight, s.LastReps)
				if s.LastRIR != nil {
					last += fmt.Sprintf(" @%.0f RIR", *s.LastRIR)
				}
				fmt.Printf("  %s %s -> %s  %s\n",
					padRight(e.Name, 32),
					color.New(color.Faint).Sprint(last),
					color.New(color.Bold).Sprintf("%.1f x %d", s.SuggestedWeight, s.SuggestedReps),
					s.Message)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestDay, "day", "d", 0, "limit to one training day")
	rootCmd.AddCommand(suggestCmd)
}
