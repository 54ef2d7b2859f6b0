// ABOUTME: Tests for feedback-derived weight adjustments.
// ABOUTME: Validates pump and fatigue nudges, their stacking, and the no-feedback case.
package progression

import (
	"testing"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

func feedback(pump, soreness, fatigue *int) *models.ExerciseFeedback {
	return models.NewExerciseFeedback(uuid.New(), uuid.New(), pump, soreness, fatigue)
}

func intp(v int) *int { return &v }

func TestFeedbackAdjustment(t *testing.T) {
	tests := []struct {
		name string
		fb   *models.ExerciseFeedback
		want float64
	}{
		{"no feedback", nil, 0},
		{"neutral ratings", feedback(intp(3), intp(2), intp(3)), 0},
		{"low pump adds half increment", feedback(intp(2), nil, nil), 1.25},
		{"high fatigue removes half increment", feedback(nil, nil, intp(4)), -1.25},
		{"pump and fatigue cancel", feedback(intp(1), nil, intp(5)), 0},
		{"soreness alone is ignored", feedback(nil, intp(5), nil), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeedbackAdjustment(tt.fb, 2.5)
			if got != tt.want {
				t.Errorf("FeedbackAdjustment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeedbackAdjustmentScalesWithIncrement(t *testing.T) {
	fb := feedback(intp(1), nil, nil)
	if got := FeedbackAdjustment(fb, 5.0); got != 2.5 {
		t.Errorf("expected 2.5 with lower-body increment, got %v", got)
	}
}
