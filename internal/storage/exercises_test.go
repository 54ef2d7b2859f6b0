// ABOUTME: Tests for exercise CRUD and catalog seeding.
// ABOUTME: Validates filtering, search, built-in protection, and idempotent seeds.
package storage

import (
	"errors"
	"testing"

	"github.com/liftlab/meso/internal/models"
)

func TestCreateAndGetExercise(t *testing.T) {
	db := setupTestDB(t)

	e := mustCreateExercise(t, db, "Incline Dumbbell Press", models.MuscleChest)

	got, err := db.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Name != "Incline Dumbbell Press" {
		t.Errorf("Name mismatch: got %s", got.Name)
	}
	if len(got.MuscleGroups) != 1 || got.MuscleGroups[0] != models.MuscleChest {
		t.Errorf("MuscleGroups mismatch: got %v", got.MuscleGroups)
	}
	if !got.IsCustom {
		t.Error("expected NewExercise to create a custom exercise")
	}
}

func TestGetExerciseByName(t *testing.T) {
	db := setupTestDB(t)

	mustCreateExercise(t, db, "Barbell Row", models.MuscleBack)

	got, err := db.GetExerciseByName("barbell row")
	if err != nil {
		t.Fatalf("GetExerciseByName failed: %v", err)
	}
	if got.Name != "Barbell Row" {
		t.Errorf("Name mismatch: got %s", got.Name)
	}

	if _, err := db.GetExerciseByName("No Such Lift"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListExercisesByMuscleGroup(t *testing.T) {
	db := setupTestDB(t)

	mustCreateExercise(t, db, "Bench Press", models.MuscleChest, models.MuscleTriceps)
	mustCreateExercise(t, db, "Squat", models.MuscleQuadriceps, models.MuscleGlutes)
	mustCreateExercise(t, db, "Dips", models.MuscleChest, models.MuscleTriceps)

	all, err := db.ListExercises(nil)
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 exercises, got %d", len(all))
	}

	chest := models.MuscleChest
	filtered, err := db.ListExercises(&chest)
	if err != nil {
		t.Fatalf("ListExercises filtered failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 chest exercises, got %d", len(filtered))
	}
}

func TestSearchExercises(t *testing.T) {
	db := setupTestDB(t)

	mustCreateExercise(t, db, "Barbell Bench Press", models.MuscleChest)
	mustCreateExercise(t, db, "Dumbbell Bench Press", models.MuscleChest)
	mustCreateExercise(t, db, "Leg Press", models.MuscleQuadriceps)

	matches, err := db.SearchExercises("bench")
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestDeleteExerciseRefusesBuiltins(t *testing.T) {
	db := setupTestDB(t)

	builtin := models.NewExercise("Barbell Squat", []models.MuscleGroup{models.MuscleQuadriceps}, models.EquipmentBarbell)
	builtin.IsCustom = false
	if err := db.CreateExercise(builtin); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := db.DeleteExercise(builtin.ID); err == nil {
		t.Error("expected error deleting a built-in exercise")
	}

	custom := mustCreateExercise(t, db, "My Special Curl", models.MuscleBiceps)
	if err := db.DeleteExercise(custom.ID); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}
	if _, err := db.GetExercise(custom.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSeedExercisesSkipsExisting(t *testing.T) {
	db := setupTestDB(t)

	seed := []*models.Exercise{
		models.NewExercise("Barbell Squat", []models.MuscleGroup{models.MuscleQuadriceps}, models.EquipmentBarbell),
		models.NewExercise("Deadlift", []models.MuscleGroup{models.MuscleHamstrings}, models.EquipmentBarbell),
	}
	if err := db.SeedExercises(seed); err != nil {
		t.Fatalf("SeedExercises failed: %v", err)
	}

	// Seeding again must not duplicate
	if err := db.SeedExercises(seed); err != nil {
		t.Fatalf("second SeedExercises failed: %v", err)
	}

	all, err := db.ListExercises(nil)
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 exercises after double seed, got %d", len(all))
	}
}
