// ABOUTME: Insight generation for the stats dashboard.
// ABOUTME: Turns a Summary of recent training into short human-readable observations.
package stats

import "fmt"

// InsightType classifies an insight for display.
type InsightType string

const (
	InsightImprovement InsightType = "improvement"
	InsightWarning     InsightType = "warning"
	InsightAchievement InsightType = "achievement"
	InsightTip         InsightType = "tip"
	InsightStreak      InsightType = "streak"
)

// Insight is one observation about recent training.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// Summary collects the signals the insight rules read.
type Summary struct {
	CurrentStreak       int
	MissedDays          int
	RecentPRs           int
	AverageRIR          float64
	VolumeChangePercent float64
	E1RMChange          float64
}

// Insights applies the insight rules to a summary. Rules are independent;
// the result may be empty.
func Insights(s Summary) []Insight {
	var insights []Insight

	if s.E1RMChange > 0 {
		insights = append(insights, Insight{
			Type:        InsightImprovement,
			Title:       "Strength gains",
			Description: fmt.Sprintf("Your estimated 1RM has improved by %.1f this month", s.E1RMChange),
		})
	}

	if s.CurrentStreak >= 7 {
		insights = append(insights, Insight{
			Type:        InsightStreak,
			Title:       "On fire",
			Description: fmt.Sprintf("You've trained %d days in a row", s.CurrentStreak),
		})
	}

	if s.VolumeChangePercent > 10 {
		insights = append(insights, Insight{
			Type:        InsightImprovement,
			Title:       "Volume up",
			Description: fmt.Sprintf("Weekly training volume is up %.0f%%", s.VolumeChangePercent),
		})
	}

	if s.MissedDays >= 3 {
		insights = append(insights, Insight{
			Type:        InsightWarning,
			Title:       "Getting rusty",
			Description: fmt.Sprintf("It's been %d days since your last workout", s.MissedDays),
		})
	}

	if s.RecentPRs > 0 {
		insights = append(insights, Insight{
			Type:        InsightAchievement,
			Title:       "New personal records",
			Description: fmt.Sprintf("You set %d new PRs this week", s.RecentPRs),
		})
	}

	if s.AverageRIR > 3 {
		insights = append(insights, Insight{
			Type:        InsightTip,
			Title:       "Push harder",
			Description: "Your average RIR is high. Consider increasing intensity.",
		})
	}

	return insights
}
