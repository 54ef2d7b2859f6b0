// ABOUTME: CLI commands for programmes (mesocycles).
// ABOUTME: Supports create, import from TOML, list, show, start, advance, end, delete.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/progression"
	"github.com/spf13/cobra"
)

var (
	programmeWeeks int
	programmeDays  int
)

var programmeCmd = &cobra.Command{
	Use:     "programme",
	Aliases: []string{"prog", "p"},
	Short:   "Manage training programmes",
	Long: `A programme is a mesocycle: a fixed number of weeks, a set of training
days, and a target effort (RIR) per week. At most one programme is active
at a time.

The week's RIR target ramps 3 -> 2 -> 1 and the final week is a deload at
4 RIR. Individual weeks can be overridden in the plan file.

WORKFLOW:

  1. Import a plan:       meso programme import plan.toml
  2. Activate it:         meso programme start <id>
  3. Train:               meso workout start --day 1
  4. End of the week:     meso programme advance

PLAN FILE (TOML):

  name = "Hypertrophy Block"
  duration_weeks = 5
  days_per_week = 2

  [rir_targets]
  # optional per-week overrides, e.g. 3 = 1

  [[day]]
  name = "Upper"
  [[day.exercise]]
  name = "Barbell Bench Press"
  sets = 3
  min_reps = 8
  max_reps = 12`,
}

var programmeCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty programme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if programmeWeeks < 1 {
			return fmt.Errorf("duration must be at least 1 week")
		}
		if programmeDays < 1 || programmeDays > 7 {
			return fmt.Errorf("days per week must be between 1 and 7")
		}

		p := models.NewProgramme(args[0], programmeWeeks, programmeDays)
		if err := repo.CreateProgramme(p); err != nil {
			return fmt.Errorf("failed to create programme: %w", err)
		}

		color.Green("✓ Created %s", p.Name)
		fmt.Printf("  %s %d weeks, %d days/week\n",
			color.New(color.Faint).Sprint(p.ID.String()[:8]),
			p.DurationWeeks, p.DaysPerWeek)
		return nil
	},
}

var programmeImportCmd = &cobra.Command{
	Use:   "import <file.toml>",
	Short: "Import a programme from a TOML plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var plan models.PlanTOML
		if _, err := toml.DecodeFile(args[0], &plan); err != nil {
			return fmt.Errorf("failed to parse plan: %w", err)
		}

		if plan.Name == "" {
			return fmt.Errorf("plan has no name")
		}
		if plan.DurationWeeks < 1 {
			return fmt.Errorf("plan needs duration_weeks >= 1")
		}
		if len(plan.Days) == 0 {
			return fmt.Errorf("plan has no days")
		}
		daysPerWeek := plan.DaysPerWeek
		if daysPerWeek == 0 {
			daysPerWeek = len(plan.Days)
		}

		p := models.NewProgramme(plan.Name, plan.DurationWeeks, daysPerWeek)
		for weekStr, rir := range plan.RIRTargets {
			week, err := strconv.Atoi(weekStr)
			if err != nil || week < 1 || week > plan.DurationWeeks {
				return fmt.Errorf("bad rir_targets week %q", weekStr)
			}
			p.WithRIRTarget(week, rir)
		}

		// Resolve every exercise name before writing anything.
		type resolved struct {
			day       models.DayTOML
			exercises []*models.Exercise
		}
		plans := make([]resolved, 0, len(plan.Days))
		for _, day := range plan.Days {
			if len(day.Exercises) == 0 {
				return fmt.Errorf("day %q has no exercises", day.Name)
			}
			r := resolved{day: day}
			for _, ex := range day.Exercises {
				if ex.MinReps < 1 || ex.MinReps > ex.MaxReps {
					return fmt.Errorf("%s: bad rep range %d-%d", ex.Name, ex.MinReps, ex.MaxReps)
				}
				e, err := resolveExercise(ex.Name)
				if err != nil {
					return fmt.Errorf("day %q: %w", day.Name, err)
				}
				r.exercises = append(r.exercises, e)
			}
			plans = append(plans, r)
		}

		if err := repo.CreateProgramme(p); err != nil {
			return fmt.Errorf("failed to create programme: %w", err)
		}

		for i, r := range plans {
			t := models.NewWorkoutTemplate(p.ID, r.day.Name, i+1, i)
			if err := repo.CreateTemplate(t); err != nil {
				return fmt.Errorf("failed to create template %q: %w", r.day.Name, err)
			}
			for j, ex := range r.day.Exercises {
				sets := ex.Sets
				if sets < 1 {
					sets = 3
				}
				te := models.NewTemplateExercise(t.ID, r.exercises[j].ID, j, sets, ex.MinReps, ex.MaxReps)
				if err := repo.CreateTemplateExercise(te); err != nil {
					return fmt.Errorf("failed to add %q to %q: %w", ex.Name, r.day.Name, err)
				}
			}
		}

		color.Green("✓ Imported %s", p.Name)
		fmt.Printf("  %s %d weeks, %d days\n",
			color.New(color.Faint).Sprint(p.ID.String()[:8]),
			p.DurationWeeks, len(plan.Days))
		fmt.Printf("  start it with: meso programme start %s\n", p.ID.String()[:8])
		return nil
	},
}

var programmeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List programmes",
	RunE: func(cmd *cobra.Command, args []string) error {
		programmes, err := repo.ListProgrammes()
		if err != nil {
			return fmt.Errorf("failed to list programmes: %w", err)
		}

		if len(programmes) == 0 {
			fmt.Println("No programmes. Import one with: meso programme import plan.toml")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range programmes {
			status := ""
			switch {
			case p.IsActive:
				status = color.GreenString(" active (week %d/%d)", p.CurrentWeek, p.DurationWeeks)
			case p.EndedEarly:
				status = faint.Sprint(" ended early")
			case p.IsComplete():
				status = faint.Sprint(" complete")
			}
			fmt.Printf("%s %s  %d weeks, %d days/week%s\n",
				faint.Sprint(p.ID.String()[:8]),
				padRight(p.Name, 28),
				p.DurationWeeks, p.DaysPerWeek, status)
		}
		return nil
	},
}

var programmeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a programme's days and targets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := argOrActiveProgramme(args)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(p.Name),
			color.New(color.Faint).Sprint(p.ID.String()[:8]))
		fmt.Printf("  week %d of %d, %d days/week\n", p.CurrentWeek, p.DurationWeeks, p.DaysPerWeek)

		targets := make([]string, 0, p.DurationWeeks)
		for week := 1; week <= p.DurationWeeks; week++ {
			targets = append(targets, fmt.Sprintf("w%d:%d",
				week, progression.TargetRIR(p.RIRTargets, week, p.DurationWeeks)))
		}
		fmt.Printf("  RIR targets: %s\n\n", strings.Join(targets, " "))

		templates, err := repo.ListTemplates(p.ID)
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		for _, t := range templates {
			fmt.Printf("  Day %d: %s  %s\n", t.DayNumber, t.Name,
				color.New(color.Faint).Sprint(t.ID.String()[:8]))
			exercises, err := repo.ListTemplateExercises(t.ID)
			if err != nil {
				return fmt.Errorf("failed to list template exercises: %w", err)
			}
			for _, te := range exercises {
				e, err := repo.GetExercise(te.ExerciseID)
				if err != nil {
					return fmt.Errorf("failed to load exercise: %w", err)
				}
				fmt.Printf("    %s %dx%d-%d\n", padRight(e.Name, 32), te.TargetSets, te.MinReps, te.MaxReps)
			}
		}
		return nil
	},
}

var programmeStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Activate a programme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProgramme(args[0])
		if err != nil {
			return err
		}

		if err := repo.StartProgramme(p.ID); err != nil {
			return err
		}

		color.Green("✓ Started %s", p.Name)
		fmt.Printf("  week 1 of %d, target %d RIR\n",
			p.DurationWeeks, progression.TargetRIR(p.RIRTargets, 1, p.DurationWeeks))
		return nil
	},
}

var programmeAdvanceCmd = &cobra.Command{
	Use:   "advance [id]",
	Short: "Complete the current week and move to the next",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := argOrActiveProgramme(args)
		if err != nil {
			return err
		}

		before := p.CurrentWeek
		p, err = repo.AdvanceWeek(p.ID)
		if err != nil {
			return err
		}

		if p.CurrentWeek == before {
			fmt.Printf("%s is already in its final week (%d of %d).\n",
				p.Name, p.CurrentWeek, p.DurationWeeks)
			fmt.Println("End it with: meso programme end")
			return nil
		}

		color.Green("✓ Week %d complete", before)
		target := progression.TargetRIR(p.RIRTargets, p.CurrentWeek, p.DurationWeeks)
		label := ""
		if p.CurrentWeek == p.DurationWeeks {
			label = " (deload)"
		}
		fmt.Printf("  now week %d of %d, target %d RIR%s\n",
			p.CurrentWeek, p.DurationWeeks, target, label)
		return nil
	},
}

var programmeEndCmd = &cobra.Command{
	Use:   "end [id]",
	Short: "End a programme before its final week",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := argOrActiveProgramme(args)
		if err != nil {
			return err
		}

		p, err = repo.EndProgrammeEarly(p.ID)
		if err != nil {
			return err
		}

		color.Green("✓ Ended %s at week %d of %d", p.Name, p.CurrentWeek, p.DurationWeeks)
		return nil
	},
}

var programmeDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a programme and its templates",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProgramme(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteProgramme(p.ID); err != nil {
			return err
		}

		color.Green("✓ Deleted %s", p.Name)
		return nil
	},
}

// argOrActiveProgramme resolves the optional positional programme argument,
// falling back to the active programme.
func argOrActiveProgramme(args []string) (*models.Programme, error) {
	if len(args) > 0 {
		return repo.GetProgramme(args[0])
	}
	p, err := repo.ActiveProgramme()
	if err != nil {
		return nil, fmt.Errorf("no active programme (start one with: meso programme start <id>)")
	}
	return p, nil
}

func init() {
	programmeCreateCmd.Flags().IntVarP(&programmeWeeks, "weeks", "w", 5, "programme duration in weeks")
	programmeCreateCmd.Flags().IntVarP(&programmeDays, "days", "d", 3, "training days per week")

	programmeCmd.AddCommand(programmeCreateCmd)
	programmeCmd.AddCommand(programmeImportCmd)
	programmeCmd.AddCommand(programmeListCmd)
	programmeCmd.AddCommand(programmeShowCmd)
	programmeCmd.AddCommand(programmeStartCmd)
	programmeCmd.AddCommand(programmeAdvanceCmd)
	programmeCmd.AddCommand(programmeEndCmd)
	programmeCmd.AddCommand(programmeDeleteCmd)
	rootCmd.AddCommand(programmeCmd)
}
