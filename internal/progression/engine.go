// ABOUTME: Progressive overload engine producing next-session suggestions.
// ABOUTME: Branches on rep range and RIR vs the week's target, with feedback-based nudges.
package progression

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/storage"
)

// Store is the slice of the repository the engine reads from.
type Store interface {
	// LastPerformance returns the most recent workout for the template that
	// contains working sets for the exercise, with those sets in set order.
	LastPerformance(templateID, exerciseID uuid.UUID) (*models.WorkoutLog, []*models.SetLog, error)
	GetExercise(id uuid.UUID) (*models.Exercise, error)
	// LatestExerciseFeedback returns the most recent feedback row for the
	// exercise across all workouts.
	LatestExerciseFeedback(exerciseID uuid.UUID) (*models.ExerciseFeedback, error)
}

// Suggestion is the engine's recommendation for the next session of one
// template exercise.
type Suggestion struct {
	HasHistory         bool     `json:"has_history"`
	LastWeight         float64  `json:"last_weight,omitempty"`
	LastReps           int      `json:"last_reps,omitempty"`
	LastRIR            *float64 `json:"last_rir,omitempty"`
	LastE1RM           float64  `json:"last_e1rm,omitempty"`
	SuggestedWeight    float64  `json:"suggested_weight"`
	SuggestedReps      int      `json:"suggested_reps"`
	TargetRIR          int      `json:"target_rir"`
	Message            string   `json:"message"`
	WeekNumber         int      `json:"week_number"`
	FeedbackAdjustment float64  `json:"feedback_adjustment,omitempty"`
}

// Weight increments per session. Lower-body lifts tolerate bigger jumps.
const (
	upperIncrement = 2.5
	lowerIncrement = 5.0
)

// maxJumpFraction caps a weight increase relative to the current weight.
const maxJumpFraction = 0.10

// Engine computes progression suggestions from logged history.
type Engine struct {
	store  Store
	logger *slog.Logger
}

// NewEngine creates a progression engine reading from the given store.
func NewEngine(store Store, logger *slog.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// Suggest computes the next-session recommendation for one exercise of a
// programme training day. It never returns an error: missing optional data
// narrows the computation, and a store failure degrades to the no-history
// suggestion with the default target RIR.
func (e *Engine) Suggest(prog *models.Programme, te *models.TemplateExercise) Suggestion {
	week := prog.CurrentWeek
	if week > prog.DurationWeeks {
		week = prog.DurationWeeks
	}
	target := TargetRIR(prog.RIRTargets, week, prog.DurationWeeks)

	_, sets, err := e.store.LastPerformance(te.TemplateID, te.ExerciseID)
	if err != nil || len(sets) == 0 {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			e.logger.Warn("last performance lookup failed, suggesting defaults",
				slog.String("exercise_id", te.ExerciseID.String()),
				slog.Any("error", err))
			target = DefaultRIRTarget(week, prog.DurationWeeks)
		}
		return e.noHistory(te, target, week)
	}

	avgWeight, avgRepsF, avgRIR := averages(sets)
	avgReps := int(avgRepsF + 0.5)
	minReps, maxReps := te.MinReps, te.MaxReps

	increment := upperIncrement
	if ex, exErr := e.store.GetExercise(te.ExerciseID); exErr != nil {
		e.logger.Warn("exercise lookup failed, assuming upper-body increment",
			slog.String("exercise_id", te.ExerciseID.String()),
			slog.Any("error", exErr))
	} else if ex.IsLowerBody() {
		increment = lowerIncrement
	}

	fb, fbErr := e.store.LatestExerciseFeedback(te.ExerciseID)
	if fbErr != nil {
		if !errors.Is(fbErr, storage.ErrNotFound) {
			e.logger.Warn("feedback lookup failed, skipping adjustment",
				slog.String("exercise_id", te.ExerciseID.String()),
				slog.Any("error", fbErr))
		}
		fb = nil
	}
	adj := FeedbackAdjustment(fb, increment)

	var (
		weight  float64
		reps    int
		message string
	)
	switch {
	case avgRIR != nil && avgRepsF >= float64(maxReps) && *avgRIR <= float64(target):
		// Topped the rep range at or below the target effort: load more.
		jumpCap := round1(avgWeight * maxJumpFraction)
		if jumpCap < increment {
			// A full jump would exceed 10% of the working weight; earn it
			// with an extra rep first.
			weight = avgWeight
			reps = min(avgReps+1, maxReps)
			message = fmt.Sprintf("Strong session. Add a rep at %.1f before loading more weight", weight)
		} else {
			inc := increment + adj
			if inc > jumpCap {
				inc = jumpCap
			}
			if inc < 0 {
				inc = 0
			}
			weight = avgWeight + inc
			reps = minReps
			message = fmt.Sprintf("Great progress! Increase weight to %.1f, aim for %d-%d reps", round1(weight), minReps, maxReps)
		}

	case avgRIR != nil && *avgRIR > float64(target)+1:
		// Clearly easier than the week calls for.
		weight = avgWeight + increment/2 + adj
		reps = avgReps
		message = fmt.Sprintf("Too easy last time. Small bump to %.1f for %d reps", round1(weight), reps)

	case avgRIR != nil && *avgRIR < float64(target)-1 && highFatigue(fb):
		// Harder than planned and fatigue is accumulating: back off.
		weight = avgWeight + adj
		if weight < 0 {
			weight = 0
		}
		reps = max(avgReps-1, minReps)
		message = fmt.Sprintf("High fatigue last session. Hold around %.1f and keep reps controlled", round1(weight))

	case avgRepsF < float64(minReps):
		weight = avgWeight
		reps = minReps
		message = fmt.Sprintf("Missed target reps. Stay at %.1f, focus on hitting %d+ reps", round1(weight), minReps)

	case avgRIR == nil && avgRepsF >= float64(maxReps):
		// No effort signal recorded: simple reps-then-weight rule.
		weight = avgWeight + increment
		reps = minReps
		message = fmt.Sprintf("Top of the rep range. Increase weight to %.1f, aim for %d-%d reps", round1(weight), minReps, maxReps)

	default:
		weight = avgWeight
		reps = min(avgReps+1, maxReps)
		message = fmt.Sprintf("Add a rep! Aim for %d reps at %.1f", reps, round1(weight))
	}

	s := Suggestion{
		HasHistory:         true,
		LastWeight:         round1(avgWeight),
		LastReps:           avgReps,
		LastE1RM:           bestE1RM(sets),
		SuggestedWeight:    round1(weight),
		SuggestedReps:      reps,
		TargetRIR:          target,
		Message:            message,
		WeekNumber:         week,
		FeedbackAdjustment: adj,
	}
	if avgRIR != nil {
		r := round1(*avgRIR)
		s.LastRIR = &r
	}
	return s
}

// noHistory is the first-session default: no load suggestion, bottom of the
// rep range, start light at the week's target effort.
func (e *Engine) noHistory(te *models.TemplateExercise, target, week int) Suggestion {
	return Suggestion{
		HasHistory:      false,
		SuggestedWeight: 0,
		SuggestedReps:   te.MinReps,
		TargetRIR:       target,
		WeekNumber:      week,
		Message:         fmt.Sprintf("First time - start light and find your working weight at %d RIR", target),
	}
}

// averages computes mean weight, reps, and effective RIR over working sets.
// The RIR mean is nil when no set carries an effort signal.
func averages(sets []*models.SetLog) (avgWeight, avgReps float64, avgRIR *float64) {
	var wSum, rSum, rirSum float64
	var rirN int
	for i := range sets {
		wSum += sets[i].Weight
		rSum += float64(sets[i].Reps)
		if rir := sets[i].EffectiveRIR(); rir != nil {
			rirSum += float64(*rir)
			rirN++
		}
	}
	n := float64(len(sets))
	avgWeight = wSum / n
	avgReps = rSum / n
	if rirN > 0 {
		v := rirSum / float64(rirN)
		avgRIR = &v
	}
	return avgWeight, avgReps, avgRIR
}

// bestE1RM returns the highest estimated one-rep max among the sets, using
// the stored value when present and recomputing otherwise.
func bestE1RM(sets []*models.SetLog) float64 {
	var best float64
	for i := range sets {
		v := EstimateOneRepMax(sets[i].Weight, sets[i].Reps)
		if sets[i].E1RM != nil {
			v = *sets[i].E1RM
		}
		if v > best {
			best = v
		}
	}
	return best
}

func highFatigue(fb *models.ExerciseFeedback) bool {
	return fb != nil && fb.FatigueRating != nil && *fb.FatigueRating >= 4
}
