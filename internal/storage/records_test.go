// ABOUTME: Tests for personal records and body metrics.
// ABOUTME: Validates filtering, best-value lookups, and metric listing.
package storage

import (
	"testing"
	"time"

	"github.com/liftlab/meso/internal/models"
)

func TestAddAndListPersonalRecords(t *testing.T) {
	db := setupTestDB(t)

	bench := mustCreateExercise(t, db, "Bench Press", models.MuscleChest)
	squat := mustCreateExercise(t, db, "Squat", models.MuscleQuadriceps)
	w := workoutOn(time.Now())
	mustLogWorkout(t, db, w, models.NewSetLog(w.ID, bench.ID, 1, 100, 1))

	today := time.Now().Format(models.DateFormat)
	if err := db.AddPersonalRecord(models.NewPersonalRecord(bench.ID, models.PRWeight, 100, today, w.ID)); err != nil {
		t.Fatalf("AddPersonalRecord failed: %v", err)
	}
	if err := db.AddPersonalRecord(models.NewPersonalRecord(squat.ID, models.PRWeight, 140, today, w.ID)); err != nil {
		t.Fatalf("AddPersonalRecord failed: %v", err)
	}

	all, err := db.ListPersonalRecords(nil, 10)
	if err != nil {
		t.Fatalf("ListPersonalRecords failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 records, got %d", len(all))
	}

	benchOnly, err := db.ListPersonalRecords(&bench.ID, 10)
	if err != nil {
		t.Fatalf("ListPersonalRecords filtered failed: %v", err)
	}
	if len(benchOnly) != 1 {
		t.Errorf("expected 1 bench record, got %d", len(benchOnly))
	}
}

func TestBestRecordValue(t *testing.T) {
	db := setupTestDB(t)

	bench := mustCreateExercise(t, db, "Bench Press", models.MuscleChest)
	w := workoutOn(time.Now())
	mustLogWorkout(t, db, w, models.NewSetLog(w.ID, bench.ID, 1, 100, 1))

	today := time.Now().Format(models.DateFormat)
	db.AddPersonalRecord(models.NewPersonalRecord(bench.ID, models.PRWeight, 97.5, today, w.ID))
	db.AddPersonalRecord(models.NewPersonalRecord(bench.ID, models.PRWeight, 100, today, w.ID))
	db.AddPersonalRecord(models.NewPersonalRecord(bench.ID, models.PRE1RM, 110, today, w.ID))

	best, err := db.BestRecordValue(bench.ID, models.PRWeight)
	if err != nil {
		t.Fatalf("BestRecordValue failed: %v", err)
	}
	if best != 100 {
		t.Errorf("expected best weight 100, got %f", best)
	}

	// No records yet returns zero, not an error
	other := mustCreateExercise(t, db, "Row", models.MuscleBack)
	best, err = db.BestRecordValue(other.ID, models.PRWeight)
	if err != nil {
		t.Fatalf("BestRecordValue with no records failed: %v", err)
	}
	if best != 0 {
		t.Errorf("expected 0 for no records, got %f", best)
	}
}

func TestAddAndListBodyMetrics(t *testing.T) {
	db := setupTestDB(t)

	m1 := models.NewBodyMetric(82.5).WithDate("2026-08-01")
	m2 := models.NewBodyMetric(82.0).WithBodyFat(18.5).WithDate("2026-08-15")
	if err := db.AddBodyMetric(m1); err != nil {
		t.Fatalf("AddBodyMetric failed: %v", err)
	}
	if err := db.AddBodyMetric(m2); err != nil {
		t.Fatalf("AddBodyMetric failed: %v", err)
	}

	metrics, err := db.ListBodyMetrics(10)
	if err != nil {
		t.Fatalf("ListBodyMetrics failed: %v", err)
	}
	if len(metrics) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(metrics))
	}
	if metrics[0].Date != "2026-08-15" {
		t.Errorf("expected newest metric first, got %s", metrics[0].Date)
	}
	if metrics[0].BodyFat == nil || *metrics[0].BodyFat != 18.5 {
		t.Errorf("BodyFat not persisted: %v", metrics[0].BodyFat)
	}
}
