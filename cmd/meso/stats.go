// ABOUTME: CLI command for the stats dashboard.
// ABOUTME: Prints totals, streak, weekly volume, recent PRs, and insights.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/stats"
	"github.com/spf13/cobra"
)

var statsWeeks int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	Long: `Show the training dashboard: workout totals, current streak, weekly
volume, recent personal records, and insights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()

		logs, err := repo.ListWorkoutLogs(0)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		setsByLog := make(map[uuid.UUID][]*models.SetLog, len(logs))
		var allSets []*models.SetLog
		for _, w := range logs {
			sets, err := repo.ListSetLogs(w.ID)
			if err != nil {
				return err
			}
			setsByLog[w.ID] = sets
			allSets = append(allSets, sets...)
		}

		totals := stats.WorkoutTotals(logs, now)
		streak := stats.CurrentStreak(logs, now)
		volume := stats.WeeklyVolume(logs, setsByLog, statsWeeks, now)

		bold := color.New(color.Bold)
		fmt.Printf("%s  %d total, %d this week, %d this month\n",
			bold.Sprint("Workouts"), totals.Workouts, totals.ThisWeek, totals.ThisMonth)
		fmt.Printf("%s    %d days\n\n", bold.Sprint("Streak"), streak)

		fmt.Println(bold.Sprint("Weekly volume"))
		maxVolume := 0.0
		for _, wv := range volume {
			if wv.Volume > maxVolume {
				maxVolume = wv.Volume
			}
		}
		for _, wv := range volume {
			bar := ""
			if maxVolume > 0 {
				width := int(wv.Volume / maxVolume * 30)
				for i := 0; i < width; i++ {
					bar += "█"
				}
			}
			fmt.Printf("  %s %8.0f %s\n", wv.WeekStart, wv.Volume, bar)
		}
		fmt.Println()

		exercises, err := repo.ListExercises(nil)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*models.Exercise, len(exercises))
		for _, e := range exercises {
			byID[e.ID] = e
		}
		if mg := stats.MostTrainedGroup(allSets, byID); mg != "" {
			fmt.Printf("%s  %s\n\n", bold.Sprint("Most trained"), mg)
		}

		records, err := repo.ListPersonalRecords(nil, 5)
		if err != nil {
			return err
		}
		if len(records) > 0 {
			fmt.Println(bold.Sprint("Recent PRs"))
			for _, pr := range records {
				name := ""
				if e, ok := byID[pr.ExerciseID]; ok {
					name = e.Name
				}
				fmt.Printf("  %s  %s %s %.1f\n", pr.Date, name, pr.Type, pr.Value)
			}
			fmt.Println()
		}

		summary := stats.Summary{
			CurrentStreak: streak,
			MissedDays:    stats.MissedDays(logs, now),
			AverageRIR:    stats.AverageRIR(allSets),
			RecentPRs:     countRecentPRs(records, now),
		}
		if len(volume) >= 2 {
			prev, curr := volume[len(volume)-2].Volume, volume[len(volume)-1].Volume
			if prev > 0 {
				summary.VolumeChangePercent = (curr - prev) / prev * 100
			}
		}

		for _, insight := range stats.Insights(summary) {
			fmt.Printf("%s %s\n", bold.Sprint(insight.Title+":"), insight.Description)
		}
		return nil
	},
}

// countRecentPRs counts records set in the last 7 days.
func countRecentPRs(records []*models.PersonalRecord, now time.Time) int {
	cutoff := now.AddDate(0, 0, -7).Format(models.DateFormat)
	n := 0
	for _, pr := range records {
		if pr.Date >= cutoff {
			n++
		}
	}
	return n
}

func init() {
	statsCmd.Flags().IntVarP(&statsWeeks, "weeks", "w", 8, "weeks of volume history")
	rootCmd.AddCommand(statsCmd)
}
