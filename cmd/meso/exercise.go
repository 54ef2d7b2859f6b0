// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Supports list, search, add, show, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseMuscle    string
	exerciseEquipment string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
	Long: `Browse and manage the exercise catalog.

The catalog ships with a built-in set of common barbell, dumbbell, cable,
machine, and bodyweight movements. Custom exercises can be added and
removed; built-ins cannot be deleted.

EXAMPLES:

  meso exercise list
  meso exercise list --muscle Quadriceps
  meso exercise search "bench"
  meso exercise add "Banded Face Pull" --muscle Shoulders,Back --equipment cable
  meso exercise delete "Banded Face Pull"`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		var muscle *models.MuscleGroup
		if exerciseMuscle != "" {
			if !models.IsValidMuscleGroup(exerciseMuscle) {
				return fmt.Errorf("unknown muscle group: %s\nValid groups: %s",
					exerciseMuscle, muscleGroupNames())
			}
			mg := models.MuscleGroup(exerciseMuscle)
			muscle = &mg
		}

		exercises, err := repo.ListExercises(muscle)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		printExercises(exercises)
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search exercises by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.SearchExercises(args[0])
		if err != nil {
			return fmt.Errorf("failed to search exercises: %w", err)
		}

		printExercises(exercises)
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if exerciseMuscle == "" {
			return fmt.Errorf("--muscle is required")
		}
		var groups []models.MuscleGroup
		for _, s := range strings.Split(exerciseMuscle, ",") {
			s = strings.TrimSpace(s)
			if !models.IsValidMuscleGroup(s) {
				return fmt.Errorf("unknown muscle group: %s\nValid groups: %s", s, muscleGroupNames())
			}
			groups = append(groups, models.MuscleGroup(s))
		}

		if !models.IsValidEquipment(exerciseEquipment) {
			return fmt.Errorf("unknown equipment: %s (use barbell, dumbbells, cable, machine, or bodyweight)", exerciseEquipment)
		}

		if _, err := repo.GetExerciseByName(name); err == nil {
			return fmt.Errorf("exercise %q already exists", name)
		}

		e := models.NewExercise(name, groups, models.Equipment(exerciseEquipment))
		if err := repo.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %s [%s]\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			joinGroups(e.MuscleGroups), e.Equipment)
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveExercise(args[0])
		if err != nil {
			return err
		}

		kind := "built-in"
		if e.IsCustom {
			kind = "custom"
		}
		fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(e.Name),
			color.New(color.Faint).Sprint(e.ID.String()[:8]))
		fmt.Printf("  muscles:   %s\n", joinGroups(e.MuscleGroups))
		fmt.Printf("  equipment: %s\n", e.Equipment)
		fmt.Printf("  kind:      %s\n", kind)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <name-or-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a custom exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveExercise(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteExercise(e.ID); err != nil {
			return err
		}

		color.Green("✓ Deleted %s", e.Name)
		return nil
	},
}

// resolveExercise finds an exercise by full UUID, exact name, or unique
// name fragment.
func resolveExercise(arg string) (*models.Exercise, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return repo.GetExercise(id)
	}

	if e, err := repo.GetExerciseByName(arg); err == nil {
		return e, nil
	}

	matches, err := repo.SearchExercises(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to search exercises: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no exercise matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return nil, fmt.Errorf("%q is ambiguous: %s", arg, strings.Join(names, ", "))
	}
}

func printExercises(exercises []*models.Exercise) {
	if len(exercises) == 0 {
		fmt.Println("No exercises found.")
		return
	}

	faint := color.New(color.Faint)
	for _, e := range exercises {
		marker := ""
		if e.IsCustom {
			marker = faint.Sprint(" (custom)")
		}
		fmt.Printf("%s %s  %s [%s]%s\n",
			faint.Sprint(e.ID.String()[:8]),
			padRight(e.Name, 32),
			joinGroups(e.MuscleGroups),
			e.Equipment,
			marker)
	}
}

func joinGroups(groups []models.MuscleGroup) string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}

func muscleGroupNames() string {
	names := make([]string, 0, len(models.AllMuscleGroups))
	for _, mg := range models.AllMuscleGroups {
		names = append(names, string(mg))
	}
	return strings.Join(names, ", ")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by muscle group")
	exerciseAddCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "comma-separated muscle groups")
	exerciseAddCmd.Flags().StringVarP(&exerciseEquipment, "equipment", "e", "barbell", "equipment type")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseSearchCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
