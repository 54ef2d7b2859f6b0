// ABOUTME: Tests for data export and import.
// ABOUTME: Validates the full round trip and clear-then-insert import semantics.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/liftlab/meso/internal/models"
)

// seedFullDataset populates a database with one of everything.
func seedFullDataset(t *testing.T, db *DB) {
	t.Helper()

	bench := mustCreateExercise(t, db, "Bench Press", models.MuscleChest)
	p := mustCreateProgramme(t, db, "Block A", 4)
	tmpl := mustCreateTemplate(t, db, p, "Push", 1)
	te := models.NewTemplateExercise(tmpl.ID, bench.ID, 0, 3, 8, 12)
	if err := db.CreateTemplateExercise(te); err != nil {
		t.Fatalf("CreateTemplateExercise failed: %v", err)
	}
	if err := db.StartProgramme(p.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}
	if _, err := db.AdvanceWeek(p.ID); err != nil {
		t.Fatalf("AdvanceWeek failed: %v", err)
	}

	w := workoutOn(time.Now())
	w.WithTemplate(tmpl.ID, p.ID, 1)
	pump := 3
	fb := models.NewExerciseFeedback(w.ID, bench.ID, &pump, nil, nil)
	if err := db.CreateWorkoutLog(w,
		[]*models.SetLog{models.NewSetLog(w.ID, bench.ID, 1, 80, 10).WithRIR(2).WithE1RM(106.7)},
		[]*models.ExerciseFeedback{fb}); err != nil {
		t.Fatalf("CreateWorkoutLog failed: %v", err)
	}

	today := time.Now().Format(models.DateFormat)
	if err := db.AddPersonalRecord(models.NewPersonalRecord(bench.ID, models.PRWeight, 80, today, w.ID)); err != nil {
		t.Fatalf("AddPersonalRecord failed: %v", err)
	}
	if err := db.AddBodyMetric(models.NewBodyMetric(82.5)); err != nil {
		t.Fatalf("AddBodyMetric failed: %v", err)
	}
	if err := db.SetSetting(models.SettingWeightUnit, "kg"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
}

func TestExportMetadata(t *testing.T) {
	db := setupTestDB(t)
	seedFullDataset(t, db)

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	if data.Version != ExportVersion {
		t.Errorf("Version mismatch: got %d, want %d", data.Version, ExportVersion)
	}
	if data.Tool != "meso" {
		t.Errorf("Tool mismatch: got %s", data.Tool)
	}
	if len(data.Exercises) != 1 || len(data.Programmes) != 1 || len(data.Templates) != 1 {
		t.Errorf("collection counts wrong: %d exercises, %d programmes, %d templates",
			len(data.Exercises), len(data.Programmes), len(data.Templates))
	}
	if len(data.WorkoutLogs) != 1 || len(data.SetLogs) != 1 || len(data.WeekLogs) != 1 {
		t.Errorf("log counts wrong: %d workouts, %d sets, %d weeks",
			len(data.WorkoutLogs), len(data.SetLogs), len(data.WeekLogs))
	}
}

func TestImportRoundTrip(t *testing.T) {
	source := setupTestDB(t)
	seedFullDataset(t, source)

	exported, err := source.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	dest := setupTestDB(t)
	// Pre-existing data must be replaced, not merged
	mustCreateExercise(t, dest, "Stale Exercise", models.MuscleCore)
	if err := dest.ImportData(exported); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	reExported, err := dest.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData after import failed: %v", err)
	}

	ignoreTimes := cmpopts.IgnoreFields(ExportData{}, "ExportedAt")
	if diff := cmp.Diff(exported, reExported, ignoreTimes); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportJSONRoundTrip(t *testing.T) {
	source := setupTestDB(t)
	seedFullDataset(t, source)

	raw, err := source.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dest := setupTestDB(t)
	if err := dest.ImportJSON(raw); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	p, err := dest.ActiveProgramme()
	if err != nil {
		t.Fatalf("ActiveProgramme after import failed: %v", err)
	}
	if p.Name != "Block A" {
		t.Errorf("expected imported programme active, got %s", p.Name)
	}
	if p.CurrentWeek != 2 {
		t.Errorf("expected week 2 after import, got %d", p.CurrentWeek)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	seedFullDataset(t, db)

	md, err := db.ExportMarkdown()
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(md, "Bench Press") {
		t.Errorf("expected exercise name in markdown, got:\n%s", md)
	}
	if !strings.Contains(md, "|") {
		t.Error("expected markdown tables in export")
	}
}
