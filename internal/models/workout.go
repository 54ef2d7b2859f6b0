// ABOUTME: WorkoutLog, SetLog, WeekLog, and ExerciseFeedback models.
// ABOUTME: A workout log owns its set logs and optional per-exercise feedback rows.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the day-granularity format used for workout dates.
const DateFormat = "2006-01-02"

// WorkoutLog is one recorded training session. The template, programme, and
// week fields are set only when the workout was started from a programme
// template; a freeform workout has all three nil.
type WorkoutLog struct {
	ID          uuid.UUID  `json:"id"`
	Date        string     `json:"date"`
	TemplateID  *uuid.UUID `json:"template_id,omitempty"`
	ProgrammeID *uuid.UUID `json:"programme_id,omitempty"`
	WeekNumber  *int       `json:"week_number,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewWorkoutLog creates a freeform workout log for the given start time.
func NewWorkoutLog(start time.Time) *WorkoutLog {
	return &WorkoutLog{
		ID:        uuid.New(),
		Date:      start.Format(DateFormat),
		StartTime: start,
		CreatedAt: time.Now(),
	}
}

// WithTemplate ties the workout to a programme training day and week.
func (w *WorkoutLog) WithTemplate(templateID, programmeID uuid.UUID, weekNumber int) *WorkoutLog {
	w.TemplateID = &templateID
	w.ProgrammeID = &programmeID
	w.WeekNumber = &weekNumber
	return w
}

// WithNotes sets the workout notes.
func (w *WorkoutLog) WithNotes(notes string) *WorkoutLog {
	w.Notes = notes
	return w
}

// SetLog is one performed set. E1RM is denormalized at creation time and is
// always recomputable from weight and reps.
type SetLog struct {
	ID             uuid.UUID  `json:"id"`
	WorkoutLogID   uuid.UUID  `json:"workout_log_id"`
	ExerciseID     uuid.UUID  `json:"exercise_id"`
	SetNumber      int        `json:"set_number"`
	Weight         float64    `json:"weight"`
	Reps           int        `json:"reps"`
	RPE            *float64   `json:"rpe,omitempty"`
	RIR            *int       `json:"rir,omitempty"`
	E1RM           *float64   `json:"e1rm,omitempty"`
	IsWarmup       bool       `json:"is_warmup"`
	PumpRating     *int       `json:"pump_rating,omitempty"`
	SorenessRating *int       `json:"soreness_rating,omitempty"`
	FatigueRating  *int       `json:"fatigue_rating,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewSetLog creates a set log for a workout.
func NewSetLog(workoutLogID, exerciseID uuid.UUID, setNumber int, weight float64, reps int) *SetLog {
	return &SetLog{
		ID:           uuid.New(),
		WorkoutLogID: workoutLogID,
		ExerciseID:   exerciseID,
		SetNumber:    setNumber,
		Weight:       weight,
		Reps:         reps,
		CreatedAt:    time.Now(),
	}
}

// WithRPE sets the perceived-exertion rating.
func (s *SetLog) WithRPE(rpe float64) *SetLog {
	s.RPE = &rpe
	return s
}

// WithRIR sets the reps-in-reserve rating.
func (s *SetLog) WithRIR(rir int) *SetLog {
	s.RIR = &rir
	return s
}

// WithE1RM stores the estimated one-rep max computed at log time.
func (s *SetLog) WithE1RM(e1rm float64) *SetLog {
	s.E1RM = &e1rm
	return s
}

// WithWarmup marks the set as a warmup, excluding it from progression and
// volume calculations.
func (s *SetLog) WithWarmup() *SetLog {
	s.IsWarmup = true
	return s
}

// WithRatings sets the subjective feedback ratings (1..5, nil to skip).
func (s *SetLog) WithRatings(pump, soreness, fatigue *int) *SetLog {
	s.PumpRating = pump
	s.SorenessRating = soreness
	s.FatigueRating = fatigue
	return s
}

// EffectiveRIR returns the recorded RIR, or one derived from RPE (10 - RPE,
// clamped to 0..5) when only RPE is present. Returns nil when the set carries
// no effort signal.
func (s *SetLog) EffectiveRIR() *int {
	if s.RIR != nil {
		return s.RIR
	}
	if s.RPE != nil {
		rir := int(math.Round(10 - *s.RPE))
		if rir < 0 {
			rir = 0
		}
		if rir > 5 {
			rir = 5
		}
		return &rir
	}
	return nil
}

// WeekLog records the completion of a programme week.
type WeekLog struct {
	ID          uuid.UUID `json:"id"`
	ProgrammeID uuid.UUID `json:"programme_id"`
	WeekNumber  int       `json:"week_number"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewWeekLog records completion of the given programme week.
func NewWeekLog(programmeID uuid.UUID, weekNumber int) *WeekLog {
	return &WeekLog{
		ID:          uuid.New(),
		ProgrammeID: programmeID,
		WeekNumber:  weekNumber,
		CompletedAt: time.Now(),
	}
}

// ExerciseFeedback is the per-exercise subjective summary for one workout,
// taken from the feedback entered on that exercise's last set.
type ExerciseFeedback struct {
	ID             uuid.UUID `json:"id"`
	WorkoutLogID   uuid.UUID `json:"workout_log_id"`
	ExerciseID     uuid.UUID `json:"exercise_id"`
	PumpRating     *int      `json:"pump_rating,omitempty"`
	SorenessRating *int      `json:"soreness_rating,omitempty"`
	FatigueRating  *int      `json:"fatigue_rating,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewExerciseFeedback creates a feedback row for one exercise in a workout.
func NewExerciseFeedback(workoutLogID, exerciseID uuid.UUID, pump, soreness, fatigue *int) *ExerciseFeedback {
	return &ExerciseFeedback{
		ID:             uuid.New(),
		WorkoutLogID:   workoutLogID,
		ExerciseID:     exerciseID,
		PumpRating:     pump,
		SorenessRating: soreness,
		FatigueRating:  fatigue,
		CreatedAt:      time.Now(),
	}
}
