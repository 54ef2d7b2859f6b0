// ABOUTME: Weight adjustment derived from previous-session subjective feedback.
// ABOUTME: Low pump nudges weight up, high fatigue nudges it down; effects stack.
package progression

import "github.com/liftlab/meso/internal/models"

// FeedbackAdjustment converts an exercise's previous-session feedback into a
// weight delta in the same units as baseIncrement. A pump rating of 2 or
// below adds half an increment (insufficient stimulus); a fatigue rating of
// 4 or above removes half an increment (excessive strain). The two combine
// additively. Soreness guides volume, not load, and is ignored here. No
// feedback means no adjustment.
func FeedbackAdjustment(fb *models.ExerciseFeedback, baseIncrement float64) float64 {
	if fb == nil {
		return 0
	}
	var delta float64
	if fb.PumpRating != nil && *fb.PumpRating <= 2 {
		delta += 0.5 * baseIncrement
	}
	if fb.FatigueRating != nil && *fb.FatigueRating >= 4 {
		delta -= 0.5 * baseIncrement
	}
	return delta
}
