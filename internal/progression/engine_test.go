// ABOUTME: Tests for the progression engine's suggestion branches.
// ABOUTME: Uses a fake store to cover history, effort, fatigue, and failure paths.
package progression

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/storage"
)

// fakeStore serves canned history to the engine.
type fakeStore struct {
	workout  *models.WorkoutLog
	sets     []*models.SetLog
	exercise *models.Exercise
	feedback *models.ExerciseFeedback

	performanceErr error
	exerciseErr    error
}

func (f *fakeStore) LastPerformance(templateID, exerciseID uuid.UUID) (*models.WorkoutLog, []*models.SetLog, error) {
	if f.performanceErr != nil {
		return nil, nil, f.performanceErr
	}
	return f.workout, f.sets, nil
}

func (f *fakeStore) GetExercise(id uuid.UUID) (*models.Exercise, error) {
	if f.exerciseErr != nil {
		return nil, f.exerciseErr
	}
	return f.exercise, nil
}

func (f *fakeStore) LatestExerciseFeedback(exerciseID uuid.UUID) (*models.ExerciseFeedback, error) {
	if f.feedback == nil {
		return nil, fmt.Errorf("feedback: %w", storage.ErrNotFound)
	}
	return f.feedback, nil
}

func testEngine(store Store) *Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(store, logger)
}

func testProgramme(week, weeks int) *models.Programme {
	p := models.NewProgramme("Block", weeks, 2)
	p.CurrentWeek = week
	return p
}

func prescription(minReps, maxReps int) *models.TemplateExercise {
	return models.NewTemplateExercise(uuid.New(), uuid.New(), 0, 3, minReps, maxReps)
}

func upperBody() *models.Exercise {
	return models.NewExercise("Bench Press", []models.MuscleGroup{models.MuscleChest}, models.EquipmentBarbell)
}

func lowerBody() *models.Exercise {
	return models.NewExercise("Squat", []models.MuscleGroup{models.MuscleQuadriceps}, models.EquipmentBarbell)
}

// history builds working sets at a uniform weight/reps/RIR.
func history(n int, weight float64, reps, rir int) []*models.SetLog {
	sets := make([]*models.SetLog, n)
	for i := range sets {
		sets[i] = models.NewSetLog(uuid.New(), uuid.New(), i+1, weight, reps).WithRIR(rir)
	}
	return sets
}

func TestSuggestNoHistory(t *testing.T) {
	store := &fakeStore{performanceErr: fmt.Errorf("lookup: %w", storage.ErrNotFound)}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(1, 5), prescription(8, 12))

	if s.HasHistory {
		t.Error("expected no history")
	}
	if s.SuggestedWeight != 0 {
		t.Errorf("expected no weight suggestion, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 8 {
		t.Errorf("expected bottom of rep range, got %d", s.SuggestedReps)
	}
	if s.TargetRIR != 3 {
		t.Errorf("expected week 1 target 3, got %d", s.TargetRIR)
	}
}

func TestSuggestIncreaseWeightAtTopOfRange(t *testing.T) {
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 100, 12, 1),
	}
	engine := testEngine(store)

	// Week 3 target is 1; topped the range at target
	s := engine.Suggest(testProgramme(3, 5), prescription(8, 12))

	if !s.HasHistory {
		t.Fatal("expected history")
	}
	if s.SuggestedWeight != 102.5 {
		t.Errorf("expected 102.5, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 8 {
		t.Errorf("expected reps reset to range bottom, got %d", s.SuggestedReps)
	}
	if s.LastWeight != 100 || s.LastReps != 12 {
		t.Errorf("last performance wrong: %v x %d", s.LastWeight, s.LastReps)
	}
}

func TestSuggestLowerBodyIncrement(t *testing.T) {
	store := &fakeStore{
		exercise: lowerBody(),
		sets:     history(3, 140, 8, 1),
	}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(3, 5), prescription(5, 8))

	if s.SuggestedWeight != 145 {
		t.Errorf("expected 145 with lower-body increment, got %v", s.SuggestedWeight)
	}
}

func TestSuggestJumpCapFallsBackToExtraRep(t *testing.T) {
	// 10% of 20 is 2.0, below the 2.5 increment: earn the jump with a rep
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 20, 12, 1),
	}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(3, 5), prescription(8, 12))

	if s.SuggestedWeight != 20 {
		t.Errorf("expected weight held at 20, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 12 {
		t.Errorf("expected reps at range top, got %d", s.SuggestedReps)
	}
}

func TestSuggestTooEasySmallBump(t *testing.T) {
	// RIR 4 against a target of 2: more than a full rep in reserve spare
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 60, 10, 4),
	}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(2, 5), prescription(8, 12))

	if s.SuggestedWeight != 61.3 {
		t.Errorf("expected half-increment bump to 61.3, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 10 {
		t.Errorf("expected reps held, got %d", s.SuggestedReps)
	}
}

func TestSuggestHighFatigueBacksOff(t *testing.T) {
	fatigue := 5
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 80, 10, 0),
		feedback: models.NewExerciseFeedback(uuid.New(), uuid.New(), nil, nil, &fatigue),
	}
	engine := testEngine(store)

	// RIR 0 against a week-2 target of 2, with high fatigue on record
	s := engine.Suggest(testProgramme(2, 5), prescription(8, 12))

	if s.SuggestedWeight >= 80 {
		t.Errorf("expected reduced weight, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 9 {
		t.Errorf("expected one fewer rep, got %d", s.SuggestedReps)
	}
	if s.FeedbackAdjustment != -1.25 {
		t.Errorf("expected fatigue adjustment -1.25, got %v", s.FeedbackAdjustment)
	}
}

func TestSuggestMissedMinReps(t *testing.T) {
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 80, 6, 2),
	}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(2, 5), prescription(8, 12))

	if s.SuggestedWeight != 80 {
		t.Errorf("expected weight held, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 8 {
		t.Errorf("expected range bottom, got %d", s.SuggestedReps)
	}
}

func TestSuggestNoEffortSignalAtTopOfRange(t *testing.T) {
	sets := make([]*models.SetLog, 3)
	for i := range sets {
		sets[i] = models.NewSetLog(uuid.New(), uuid.New(), i+1, 50, 12)
	}
	store := &fakeStore{exercise: upperBody(), sets: sets}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(1, 5), prescription(8, 12))

	if s.SuggestedWeight != 52.5 {
		t.Errorf("expected simple increment to 52.5, got %v", s.SuggestedWeight)
	}
	if s.LastRIR != nil {
		t.Errorf("expected no RIR signal, got %v", s.LastRIR)
	}
}

func TestSuggestDefaultAddsRep(t *testing.T) {
	// Mid-range at target effort: push reps before weight
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 80, 10, 2),
	}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(2, 5), prescription(8, 12))

	if s.SuggestedWeight != 80 {
		t.Errorf("expected weight held, got %v", s.SuggestedWeight)
	}
	if s.SuggestedReps != 11 {
		t.Errorf("expected one more rep, got %d", s.SuggestedReps)
	}
}

func TestSuggestStoreFailureDegradesToDefaults(t *testing.T) {
	store := &fakeStore{performanceErr: errors.New("disk on fire")}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(2, 5), prescription(8, 12))

	if s.HasHistory {
		t.Error("expected no history on store failure")
	}
	if s.SuggestedReps != 8 {
		t.Errorf("expected range bottom, got %d", s.SuggestedReps)
	}
	if s.TargetRIR != 2 {
		t.Errorf("expected default week-2 target, got %d", s.TargetRIR)
	}
}

func TestSuggestRPEOnlySetsStillCountAsEffort(t *testing.T) {
	sets := make([]*models.SetLog, 2)
	for i := range sets {
		// RPE 9 converts to RIR 1
		sets[i] = models.NewSetLog(uuid.New(), uuid.New(), i+1, 100, 12).WithRPE(9)
	}
	store := &fakeStore{exercise: upperBody(), sets: sets}
	engine := testEngine(store)

	s := engine.Suggest(testProgramme(3, 5), prescription(8, 12))

	if s.SuggestedWeight != 102.5 {
		t.Errorf("expected weight increase via RPE-derived RIR, got %v", s.SuggestedWeight)
	}
	if s.LastRIR == nil || *s.LastRIR != 1 {
		t.Errorf("expected converted RIR 1, got %v", s.LastRIR)
	}
}

func TestSuggestWeekPastDurationClampsToDeload(t *testing.T) {
	store := &fakeStore{
		exercise: upperBody(),
		sets:     history(3, 80, 10, 2),
	}
	engine := testEngine(store)

	p := testProgramme(6, 5)
	s := engine.Suggest(p, prescription(8, 12))

	if s.WeekNumber != 5 {
		t.Errorf("expected week clamped to 5, got %d", s.WeekNumber)
	}
	if s.TargetRIR != DeloadRIR {
		t.Errorf("expected deload target, got %d", s.TargetRIR)
	}
}
