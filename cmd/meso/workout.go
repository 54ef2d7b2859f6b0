// ABOUTME: CLI commands for logging workouts through the live session.
// ABOUTME: Supports start, set, edit, drop, status, finish, cancel, list, and show.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/session"
	"github.com/spf13/cobra"
)

var (
	workoutDay   int
	workoutNotes string
	workoutLimit int
	setRIR       int
	setRPE       float64
	setWarmup    bool
	setPump      int
	setSoreness  int
	setFatigue   int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log workouts",
	Long: `Log a training session set by set.

A session accumulates in a state file until you finish it; finishing writes
the workout, its sets, and per-exercise feedback to the database in one
transaction and checks for new personal records.

WORKFLOW:

  1. Start:   meso workout start --day 1     (or no --day for freeform)
  2. Log:     meso workout set "Barbell Squat" 100 8 --rir 2
  3. Review:  meso workout status
  4. Finish:  meso workout finish --notes "Felt strong"

EFFORT RATINGS:

  --rir   Reps in reserve (0-5). Preferred.
  --rpe   Rating of perceived exertion (1-10). Converted to RIR as 10-RPE.

FEEDBACK (optional, drives next week's suggestions):

  --pump --soreness --fatigue   1-5 ratings on your last set of an exercise.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		var template *models.WorkoutTemplate
		var programme *models.Programme

		if workoutDay > 0 {
			var err error
			programme, err = repo.ActiveProgramme()
			if err != nil {
				return fmt.Errorf("no active programme; start a freeform workout without --day")
			}
			templates, err := repo.ListTemplates(programme.ID)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}
			for _, t := range templates {
				if t.DayNumber == workoutDay {
					template = t
					break
				}
			}
			if template == nil {
				return fmt.Errorf("programme %q has no day %d", programme.Name, workoutDay)
			}
		}

		s, err := sessionMgr.Start(template, programme)
		if err != nil {
			return err
		}

		if template != nil {
			color.Green("✓ Started %s (week %d)", template.Name, *s.WeekNumber)
			printPrescriptions(template)
		} else {
			color.Green("✓ Started freeform workout")
		}
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <exercise> <weight> <reps>",
	Short: "Log a set in the current session",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := resolveExercise(args[0])
		if err != nil {
			return err
		}

		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil || reps < 1 {
			return fmt.Errorf("invalid reps: %s", args[2])
		}

		set := session.Set{ExerciseID: e.ID, Weight: weight, Reps: reps, IsWarmup: setWarmup}
		if cmd.Flags().Changed("rir") {
			if setRIR < 0 || setRIR > 5 {
				return fmt.Errorf("RIR must be between 0 and 5")
			}
			set.RIR = &setRIR
		}
		if cmd.Flags().Changed("rpe") {
			if setRPE < 1 || setRPE > 10 {
				return fmt.Errorf("RPE must be between 1 and 10")
			}
			set.RPE = &setRPE
		}
		if cmd.Flags().Changed("pump") {
			set.PumpRating = ratingPtr(setPump)
		}
		if cmd.Flags().Changed("soreness") {
			set.SorenessRating = ratingPtr(setSoreness)
		}
		if cmd.Flags().Changed("fatigue") {
			set.FatigueRating = ratingPtr(setFatigue)
		}

		s, err := sessionMgr.AddSet(set)
		if err != nil {
			return err
		}

		n := s.Sets[len(s.Sets)-1].SetNumber
		label := ""
		if setWarmup {
			label = " (warmup)"
		}
		color.Green("✓ %s set %d: %.1f x %d%s", e.Name, n, weight, reps, label)
		return nil
	},
}

var workoutStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sessionMgr.Active()
		if errors.Is(err, session.ErrNoSession) {
			fmt.Println("No workout in progress.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Workout started %s\n", s.StartTime.Format("15:04"))
		if len(s.Sets) == 0 {
			fmt.Println("  no sets yet")
			return nil
		}
		for i, set := range s.Sets {
			e, err := repo.GetExercise(set.ExerciseID)
			if err != nil {
				return err
			}
			effort := ""
			if set.RIR != nil {
				effort = fmt.Sprintf(" @%d RIR", *set.RIR)
			} else if set.RPE != nil {
				effort = fmt.Sprintf(" @RPE %.1f", *set.RPE)
			}
			warmup := ""
			if set.IsWarmup {
				warmup = " (warmup)"
			}
			fmt.Printf("  [%d] %s set %d: %.1f x %d%s%s\n",
				i, e.Name, set.SetNumber, set.Weight, set.Reps, effort, warmup)
		}
		return nil
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <index> <weight> <reps>",
	Short: "Correct a set in the current session",
	Long: `Replace the weight, reps, and effort rating of a logged set.

Indices are the [n] markers shown by "meso workout status". The exercise
and set number are kept; omitting --rir/--rpe clears the effort rating.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[0])
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil || reps < 1 {
			return fmt.Errorf("invalid reps: %s", args[2])
		}

		var rir *int
		var rpe *float64
		if cmd.Flags().Changed("rir") {
			if setRIR < 0 || setRIR > 5 {
				return fmt.Errorf("RIR must be between 0 and 5")
			}
			rir = &setRIR
		}
		if cmd.Flags().Changed("rpe") {
			if setRPE < 1 || setRPE > 10 {
				return fmt.Errorf("RPE must be between 1 and 10")
			}
			rpe = &setRPE
		}

		s, err := sessionMgr.UpdateSet(index, weight, reps, rpe, rir)
		if err != nil {
			return err
		}

		e, err := repo.GetExercise(s.Sets[index].ExerciseID)
		if err != nil {
			return err
		}
		color.Green("✓ %s set %d: %.1f x %d", e.Name, s.Sets[index].SetNumber, weight, reps)
		return nil
	},
}

var workoutDropCmd = &cobra.Command{
	Use:   "drop <index>",
	Short: "Remove a set from the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[0])
		}

		if _, err := sessionMgr.DeleteSet(index); err != nil {
			return err
		}

		color.Green("✓ Removed set %d", index)
		return nil
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the session and persist it",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := sessionMgr.Finish(workoutNotes)
		if err != nil {
			return err
		}

		color.Green("✓ Workout saved")
		fmt.Printf("  %s %d sets\n",
			color.New(color.Faint).Sprint(result.Workout.ID.String()[:8]),
			len(result.Sets))

		for _, pr := range result.Records {
			e, err := repo.GetExercise(pr.ExerciseID)
			if err != nil {
				return err
			}
			color.Yellow("  ★ New %s PR: %s %.1f", pr.Type, e.Name, pr.Value)
		}
		return nil
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessionMgr.Cancel(); err != nil {
			return err
		}
		color.Green("✓ Session discarded")
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := repo.ListWorkoutLogs(workoutLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No workouts logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range logs {
			sets, err := repo.ListSetLogs(w.ID)
			if err != nil {
				return err
			}
			week := ""
			if w.WeekNumber != nil {
				week = fmt.Sprintf("  week %d", *w.WeekNumber)
			}
			fmt.Printf("%s %s  %d sets%s\n",
				faint.Sprint(w.ID.String()[:8]), w.Date, len(sets), week)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout's sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := repo.GetWorkoutLog(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(w.Date),
			color.New(color.Faint).Sprint(w.ID.String()[:8]))
		if w.Notes != "" {
			fmt.Printf("  %s\n", w.Notes)
		}

		sets, err := repo.ListSetLogs(w.ID)
		if err != nil {
			return err
		}
		for _, s := range sets {
			e, err := repo.GetExercise(s.ExerciseID)
			if err != nil {
				return err
			}
			effort := ""
			if rir := s.EffectiveRIR(); rir != nil {
				effort = fmt.Sprintf(" @%d RIR", *rir)
			}
			e1rm := ""
			if s.E1RM != nil {
				e1rm = color.New(color.Faint).Sprintf("  e1RM %.1f", *s.E1RM)
			}
			warmup := ""
			if s.IsWarmup {
				warmup = " (warmup)"
			}
			fmt.Printf("  %s set %d: %.1f x %d%s%s%s\n",
				e.Name, s.SetNumber, s.Weight, s.Reps, effort, warmup, e1rm)
		}
		return nil
	},
}

func printPrescriptions(template *models.WorkoutTemplate) {
	exercises, err := repo.ListTemplateExercises(template.ID)
	if err != nil {
		return
	}
	for _, te := range exercises {
		e, err := repo.GetExercise(te.ExerciseID)
		if err != nil {
			continue
		}
		fmt.Printf("  %s %dx%d-%d\n", padRight(e.Name, 32), te.TargetSets, te.MinReps, te.MaxReps)
	}
}

func ratingPtr(v int) *int {
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return &v
}

func init() {
	workoutStartCmd.Flags().IntVarP(&workoutDay, "day", "d", 0, "programme day to train (omit for freeform)")
	workoutSetCmd.Flags().IntVar(&setRIR, "rir", 0, "reps in reserve (0-5)")
	workoutSetCmd.Flags().Float64Var(&setRPE, "rpe", 0, "rating of perceived exertion (1-10)")
	workoutSetCmd.Flags().BoolVar(&setWarmup, "warmup", false, "mark as a warmup set")
	workoutSetCmd.Flags().IntVar(&setPump, "pump", 0, "pump rating (1-5)")
	workoutSetCmd.Flags().IntVar(&setSoreness, "soreness", 0, "soreness rating (1-5)")
	workoutSetCmd.Flags().IntVar(&setFatigue, "fatigue", 0, "fatigue rating (1-5)")
	workoutEditCmd.Flags().IntVar(&setRIR, "rir", 0, "reps in reserve (0-5)")
	workoutEditCmd.Flags().Float64Var(&setRPE, "rpe", 0, "rating of perceived exertion (1-10)")
	workoutFinishCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "workout notes")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "number of workouts to show")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutEditCmd)
	workoutCmd.AddCommand(workoutStatusCmd)
	workoutCmd.AddCommand(workoutDropCmd)
	workoutCmd.AddCommand(workoutFinishCmd)
	workoutCmd.AddCommand(workoutCancelCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	rootCmd.AddCommand(workoutCmd)
}
