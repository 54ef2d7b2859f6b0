// ABOUTME: Built-in exercise catalog seeded on first run.
// ABOUTME: Names and muscle-group assignments follow common gym convention.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// builtin creates a non-custom catalog entry.
func builtin(name string, equipment models.Equipment, groups ...models.MuscleGroup) *models.Exercise {
	return &models.Exercise{
		ID:           uuid.New(),
		Name:         name,
		MuscleGroups: groups,
		Equipment:    equipment,
		IsCustom:     false,
		CreatedAt:    time.Now(),
	}
}

// Default returns the built-in exercise catalog. Each call generates fresh
// IDs; the storage seeder skips names already present, so reseeding on every
// startup is safe.
func Default() []*models.Exercise {
	barbell := models.EquipmentBarbell
	dumbbells := models.EquipmentDumbbells
	cable := models.EquipmentCable
	machine := models.EquipmentMachine
	bodyweight := models.EquipmentBodyweight

	return []*models.Exercise{
		// Chest
		builtin("Barbell Bench Press", barbell, models.MuscleChest, models.MuscleTriceps, models.MuscleShoulders),
		builtin("Incline Barbell Bench Press", barbell, models.MuscleChest, models.MuscleTriceps, models.MuscleShoulders),
		builtin("Close Grip Bench Press", barbell, models.MuscleTriceps, models.MuscleChest),
		builtin("Dumbbell Bench Press", dumbbells, models.MuscleChest, models.MuscleTriceps, models.MuscleShoulders),
		builtin("Incline Dumbbell Press", dumbbells, models.MuscleChest, models.MuscleTriceps, models.MuscleShoulders),
		builtin("Dumbbell Flyes", dumbbells, models.MuscleChest),
		builtin("Cable Crossover", cable, models.MuscleChest),
		builtin("Cable Chest Press", cable, models.MuscleChest, models.MuscleTriceps),
		builtin("Machine Chest Press", machine, models.MuscleChest, models.MuscleTriceps),
		builtin("Pec Deck", machine, models.MuscleChest),
		builtin("Smith Machine Bench Press", machine, models.MuscleChest, models.MuscleTriceps),
		builtin("Push-ups", bodyweight, models.MuscleChest, models.MuscleTriceps, models.MuscleShoulders),
		builtin("Chest Dips", bodyweight, models.MuscleChest, models.MuscleTriceps),

		// Back
		builtin("Deadlift", barbell, models.MuscleBack, models.MuscleHamstrings, models.MuscleGlutes),
		builtin("Barbell Row", barbell, models.MuscleBack, models.MuscleBiceps),
		builtin("Pendlay Row", barbell, models.MuscleBack, models.MuscleBiceps),
		builtin("T-Bar Row", barbell, models.MuscleBack, models.MuscleBiceps),
		builtin("Barbell Shrugs", barbell, models.MuscleTraps),
		builtin("Dumbbell Row", dumbbells, models.MuscleBack, models.MuscleBiceps),
		builtin("Chest Supported Row", dumbbells, models.MuscleBack, models.MuscleBiceps),
		builtin("Lat Pulldown", cable, models.MuscleBack, models.MuscleBiceps),
		builtin("Seated Cable Row", cable, models.MuscleBack, models.MuscleBiceps),
		builtin("Face Pulls", cable, models.MuscleBack, models.MuscleShoulders),
		builtin("Straight Arm Pulldown", cable, models.MuscleBack),
		builtin("Machine Row", machine, models.MuscleBack, models.MuscleBiceps),
		builtin("Assisted Pull-up Machine", machine, models.MuscleBack, models.MuscleBiceps),
		builtin("Pull-ups", bodyweight, models.MuscleBack, models.MuscleBiceps),
		builtin("Chin-ups", bodyweight, models.MuscleBack, models.MuscleBiceps),
		builtin("Inverted Row", bodyweight, models.MuscleBack, models.MuscleBiceps),

		// Shoulders
		builtin("Overhead Press", barbell, models.MuscleShoulders, models.MuscleTriceps),
		builtin("Push Press", barbell, models.MuscleShoulders, models.MuscleTriceps),
		builtin("Upright Row", barbell, models.MuscleShoulders, models.MuscleTraps),
		builtin("Dumbbell Shoulder Press", dumbbells, models.MuscleShoulders, models.MuscleTriceps),
		builtin("Arnold Press", dumbbells, models.MuscleShoulders, models.MuscleTriceps),
		builtin("Lateral Raises", dumbbells, models.MuscleShoulders),
		builtin("Front Raises", dumbbells, models.MuscleShoulders),
		builtin("Rear Delt Flyes", dumbbells, models.MuscleShoulders, models.MuscleBack),
		builtin("Cable Lateral Raise", cable, models.MuscleShoulders),
		builtin("Machine Shoulder Press", machine, models.MuscleShoulders, models.MuscleTriceps),
		builtin("Reverse Pec Deck", machine, models.MuscleShoulders, models.MuscleBack),
		builtin("Pike Push-ups", bodyweight, models.MuscleShoulders, models.MuscleTriceps),

		// Biceps
		builtin("Barbell Curl", barbell, models.MuscleBiceps),
		builtin("EZ Bar Curl", barbell, models.MuscleBiceps),
		builtin("Preacher Curl", barbell, models.MuscleBiceps),
		builtin("Dumbbell Curl", dumbbells, models.MuscleBiceps),
		builtin("Hammer Curl", dumbbells, models.MuscleBiceps, models.MuscleForearms),
		builtin("Incline Dumbbell Curl", dumbbells, models.MuscleBiceps),
		builtin("Concentration Curl", dumbbells, models.MuscleBiceps),
		builtin("Cable Curl", cable, models.MuscleBiceps),
		builtin("Machine Curl", machine, models.MuscleBiceps),

		// Triceps
		builtin("Skull Crushers", barbell, models.MuscleTriceps),
		builtin("Dumbbell Tricep Extension", dumbbells, models.MuscleTriceps),
		builtin("Overhead Dumbbell Extension", dumbbells, models.MuscleTriceps),
		builtin("Tricep Pushdown", cable, models.MuscleTriceps),
		builtin("Overhead Tricep Extension", cable, models.MuscleTriceps),
		builtin("Machine Tricep Extension", machine, models.MuscleTriceps),
		builtin("Tricep Dips", bodyweight, models.MuscleTriceps, models.MuscleChest),

		// Forearms
		builtin("Wrist Curl", barbell, models.MuscleForearms),
		builtin("Farmers Walk", dumbbells, models.MuscleForearms, models.MuscleTraps),
		builtin("Dead Hang", bodyweight, models.MuscleForearms, models.MuscleBack),

		// Quadriceps
		builtin("Barbell Squat", barbell, models.MuscleQuadriceps, models.MuscleGlutes, models.MuscleHamstrings),
		builtin("Front Squat", barbell, models.MuscleQuadriceps, models.MuscleCore),
		builtin("Barbell Lunges", barbell, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Goblet Squat", dumbbells, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Bulgarian Split Squat", dumbbells, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Walking Lunges", dumbbells, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Step-ups", dumbbells, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Leg Press", machine, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Hack Squat", machine, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Leg Extension", machine, models.MuscleQuadriceps),
		builtin("Smith Machine Squat", machine, models.MuscleQuadriceps, models.MuscleGlutes),
		builtin("Bodyweight Squat", bodyweight, models.MuscleQuadriceps, models.MuscleGlutes),

		// Hamstrings
		builtin("Romanian Deadlift", barbell, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleBack),
		builtin("Stiff Leg Deadlift", barbell, models.MuscleHamstrings, models.MuscleGlutes),
		builtin("Good Mornings", barbell, models.MuscleHamstrings, models.MuscleBack),
		builtin("Dumbbell Romanian Deadlift", dumbbells, models.MuscleHamstrings, models.MuscleGlutes),
		builtin("Cable Pull Through", cable, models.MuscleHamstrings, models.MuscleGlutes),
		builtin("Lying Leg Curl", machine, models.MuscleHamstrings),
		builtin("Seated Leg Curl", machine, models.MuscleHamstrings),
		builtin("Nordic Curl", bodyweight, models.MuscleHamstrings),

		// Glutes
		builtin("Hip Thrust", barbell, models.MuscleGlutes, models.MuscleHamstrings),
		builtin("Sumo Deadlift", barbell, models.MuscleGlutes, models.MuscleHamstrings, models.MuscleBack),
		builtin("Cable Kickback", cable, models.MuscleGlutes),
		builtin("Hip Abduction Machine", machine, models.MuscleGlutes),
		builtin("Hip Adduction Machine", machine, models.MuscleAdductors),
		builtin("Glute Bridge", bodyweight, models.MuscleGlutes),

		// Calves
		builtin("Standing Calf Raise", machine, models.MuscleCalves),
		builtin("Seated Calf Raise", machine, models.MuscleCalves),
		builtin("Leg Press Calf Raise", machine, models.MuscleCalves),
		builtin("Single Leg Calf Raise", bodyweight, models.MuscleCalves),
		builtin("Dumbbell Calf Raise", dumbbells, models.MuscleCalves),

		// Core
		builtin("Plank", bodyweight, models.MuscleCore),
		builtin("Crunches", bodyweight, models.MuscleCore),
		builtin("Hanging Leg Raise", bodyweight, models.MuscleCore),
		builtin("Ab Wheel Rollout", bodyweight, models.MuscleCore),
		builtin("Russian Twist", bodyweight, models.MuscleCore),
		builtin("Cable Crunch", cable, models.MuscleCore),
		builtin("Pallof Press", cable, models.MuscleCore),
		builtin("Ab Crunch Machine", machine, models.MuscleCore),
		builtin("Weighted Sit-up", dumbbells, models.MuscleCore),
	}
}
