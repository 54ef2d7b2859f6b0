// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and fixture builders for isolated databases.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/liftlab/meso/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustCreateExercise(t *testing.T, db *DB, name string, groups ...models.MuscleGroup) *models.Exercise {
	t.Helper()
	e := models.NewExercise(name, groups, models.EquipmentBarbell)
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	return e
}

func mustCreateProgramme(t *testing.T, db *DB, name string, weeks int) *models.Programme {
	t.Helper()
	p := models.NewProgramme(name, weeks, 2)
	if err := db.CreateProgramme(p); err != nil {
		t.Fatalf("CreateProgramme failed: %v", err)
	}
	return p
}

func mustCreateTemplate(t *testing.T, db *DB, p *models.Programme, name string, day int) *models.WorkoutTemplate {
	t.Helper()
	tmpl := models.NewWorkoutTemplate(p.ID, name, day, day-1)
	if err := db.CreateTemplate(tmpl); err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	return tmpl
}

func mustLogWorkout(t *testing.T, db *DB, w *models.WorkoutLog, sets ...*models.SetLog) {
	t.Helper()
	if err := db.CreateWorkoutLog(w, sets, nil); err != nil {
		t.Fatalf("CreateWorkoutLog failed: %v", err)
	}
}

func workoutOn(day time.Time) *models.WorkoutLog {
	return models.NewWorkoutLog(day)
}
