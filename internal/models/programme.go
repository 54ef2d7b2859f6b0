// ABOUTME: Programme (mesocycle), WorkoutTemplate, and TemplateExercise models.
// ABOUTME: A programme owns its training-day templates; templates own their exercises.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Programme is a mesocycle: a fixed-duration training plan with per-week
// effort targets. At most one programme is active at a time; the storage
// layer enforces that inside a single transaction.
type Programme struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	DurationWeeks int         `json:"duration_weeks"`
	DaysPerWeek   int         `json:"days_per_week"`
	CurrentWeek   int         `json:"current_week"`
	IsActive      bool        `json:"is_active"`
	StartDate     *time.Time  `json:"start_date,omitempty"`
	RIRTargets    map[int]int `json:"rir_targets,omitempty"`
	EndedEarly    bool        `json:"ended_early"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// NewProgramme creates an inactive programme at week 1.
func NewProgramme(name string, durationWeeks, daysPerWeek int) *Programme {
	return &Programme{
		ID:            uuid.New(),
		Name:          name,
		DurationWeeks: durationWeeks,
		DaysPerWeek:   daysPerWeek,
		CurrentWeek:   1,
		CreatedAt:     time.Now(),
	}
}

// WithRIRTarget overrides the default RIR target for a week.
func (p *Programme) WithRIRTarget(week, rir int) *Programme {
	if p.RIRTargets == nil {
		p.RIRTargets = make(map[int]int)
	}
	p.RIRTargets[week] = rir
	return p
}

// IsComplete reports whether the programme has run past its final week.
func (p *Programme) IsComplete() bool {
	return p.CurrentWeek > p.DurationWeeks
}

// WorkoutTemplate is one training day within a programme.
type WorkoutTemplate struct {
	ID          uuid.UUID `json:"id"`
	ProgrammeID uuid.UUID `json:"programme_id"`
	Name        string    `json:"name"`
	DayNumber   int       `json:"day_number"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewWorkoutTemplate creates a training-day template for a programme.
func NewWorkoutTemplate(programmeID uuid.UUID, name string, dayNumber, order int) *WorkoutTemplate {
	return &WorkoutTemplate{
		ID:          uuid.New(),
		ProgrammeID: programmeID,
		Name:        name,
		DayNumber:   dayNumber,
		Order:       order,
		CreatedAt:   time.Now(),
	}
}

// TemplateExercise prescribes sets and a rep range for one exercise on one
// training day. MinReps must not exceed MaxReps.
type TemplateExercise struct {
	ID         uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	ExerciseID uuid.UUID `json:"exercise_id"`
	Order      int       `json:"order"`
	TargetSets int       `json:"target_sets"`
	MinReps    int       `json:"min_reps"`
	MaxReps    int       `json:"max_reps"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewTemplateExercise creates a prescription within a template.
func NewTemplateExercise(templateID, exerciseID uuid.UUID, order, targetSets, minReps, maxReps int) *TemplateExercise {
	return &TemplateExercise{
		ID:         uuid.New(),
		TemplateID: templateID,
		ExerciseID: exerciseID,
		Order:      order,
		TargetSets: targetSets,
		MinReps:    minReps,
		MaxReps:    maxReps,
		CreatedAt:  time.Now(),
	}
}

//
// TOML plan files (programme import)
//

// PlanTOML is the on-disk shape of a programme definition file.
type PlanTOML struct {
	Name          string         `toml:"name"`
	DurationWeeks int            `toml:"duration_weeks"`
	DaysPerWeek   int            `toml:"days_per_week"`
	RIRTargets    map[string]int `toml:"rir_targets,omitempty"`
	Days          []DayTOML      `toml:"day"`
}

// DayTOML is one training day in a plan file.
type DayTOML struct {
	Name      string         `toml:"name"`
	Exercises []ExerciseTOML `toml:"exercise"`
}

// ExerciseTOML is one prescribed exercise in a plan file. The name is
// resolved against the exercise catalog at import time.
type ExerciseTOML struct {
	Name    string `toml:"name"`
	Sets    int    `toml:"sets"`
	MinReps int    `toml:"min_reps"`
	MaxReps int    `toml:"max_reps"`
}
