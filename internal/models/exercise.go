// ABOUTME: Exercise model, muscle group and equipment enums.
// ABOUTME: Built-in exercises are seeded once; custom ones are user-managed.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MuscleGroup identifies a trained muscle group.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "Chest"
	MuscleBack       MuscleGroup = "Back"
	MuscleShoulders  MuscleGroup = "Shoulders"
	MuscleBiceps     MuscleGroup = "Biceps"
	MuscleTriceps    MuscleGroup = "Triceps"
	MuscleForearms   MuscleGroup = "Forearms"
	MuscleTraps      MuscleGroup = "Traps"
	MuscleCore       MuscleGroup = "Core"
	MuscleQuadriceps MuscleGroup = "Quadriceps"
	MuscleHamstrings MuscleGroup = "Hamstrings"
	MuscleGlutes     MuscleGroup = "Glutes"
	MuscleCalves     MuscleGroup = "Calves"
	MuscleAdductors  MuscleGroup = "Adductors"
)

// AllMuscleGroups lists every valid muscle group.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders,
	MuscleBiceps, MuscleTriceps, MuscleForearms, MuscleTraps,
	MuscleCore,
	MuscleQuadriceps, MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleAdductors,
}

// IsValidMuscleGroup checks if a string names a known muscle group.
func IsValidMuscleGroup(s string) bool {
	for _, mg := range AllMuscleGroups {
		if string(mg) == s {
			return true
		}
	}
	return false
}

// lowerBodyGroups drive the larger weight increment in the progression engine.
var lowerBodyGroups = map[MuscleGroup]bool{
	MuscleQuadriceps: true,
	MuscleHamstrings: true,
	MuscleGlutes:     true,
	MuscleCalves:     true,
}

// Equipment identifies the equipment an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbells  Equipment = "dumbbells"
	EquipmentCable      Equipment = "cable"
	EquipmentMachine    Equipment = "machine"
	EquipmentBodyweight Equipment = "bodyweight"
)

// AllEquipment lists every valid equipment type.
var AllEquipment = []Equipment{
	EquipmentBarbell, EquipmentDumbbells, EquipmentCable,
	EquipmentMachine, EquipmentBodyweight,
}

// IsValidEquipment checks if a string names a known equipment type.
func IsValidEquipment(s string) bool {
	for _, e := range AllEquipment {
		if string(e) == s {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry referenced by templates and set logs.
// Built-ins are immutable; only custom exercises may be deleted.
type Exercise struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	MuscleGroups []MuscleGroup `json:"muscle_groups"`
	Equipment    Equipment     `json:"equipment"`
	IsCustom     bool          `json:"is_custom"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewExercise creates a custom exercise with a generated UUID.
func NewExercise(name string, groups []MuscleGroup, equipment Equipment) *Exercise {
	return &Exercise{
		ID:           uuid.New(),
		Name:         name,
		MuscleGroups: groups,
		Equipment:    equipment,
		IsCustom:     true,
		CreatedAt:    time.Now(),
	}
}

// IsLowerBody reports whether the exercise trains quadriceps, hamstrings,
// glutes, or calves. Lower-body lifts take bigger weight jumps.
func (e *Exercise) IsLowerBody() bool {
	for _, mg := range e.MuscleGroups {
		if lowerBodyGroups[mg] {
			return true
		}
	}
	return false
}
