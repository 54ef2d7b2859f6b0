// ABOUTME: Tests for the MCP server's tool and resource handlers.
// ABOUTME: Calls handlers directly against real SQLite storage.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/storage"
)

func setupServer(t *testing.T) (*Server, storage.Repository) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, db
}

func seedExercise(t *testing.T, repo storage.Repository, name string, groups ...models.MuscleGroup) *models.Exercise {
	t.Helper()
	e := models.NewExercise(name, groups, models.EquipmentBarbell)
	if err := repo.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	return e
}

func seedProgramme(t *testing.T, repo storage.Repository, e *models.Exercise) *models.Programme {
	t.Helper()
	p := models.NewProgramme("Block", 4, 1)
	if err := repo.CreateProgramme(p); err != nil {
		t.Fatalf("CreateProgramme failed: %v", err)
	}
	tmpl := models.NewWorkoutTemplate(p.ID, "Push", 1, 0)
	if err := repo.CreateTemplate(tmpl); err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	te := models.NewTemplateExercise(tmpl.ID, e.ID, 0, 3, 8, 12)
	if err := repo.CreateTemplateExercise(te); err != nil {
		t.Fatalf("CreateTemplateExercise failed: %v", err)
	}
	if err := repo.StartProgramme(p.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}
	return p
}

func TestHandleListExercises(t *testing.T) {
	server, repo := setupServer(t)
	seedExercise(t, repo, "Bench Press", models.MuscleChest)
	seedExercise(t, repo, "Squat", models.MuscleQuadriceps)

	_, out, err := server.handleListExercises(context.Background(), nil, listExercisesInput{})
	if err != nil {
		t.Fatalf("handleListExercises failed: %v", err)
	}
	if len(out.Exercises) != 2 {
		t.Errorf("expected 2 exercises, got %d", len(out.Exercises))
	}

	_, out, err = server.handleListExercises(context.Background(), nil, listExercisesInput{MuscleGroup: "Chest"})
	if err != nil {
		t.Fatalf("filtered handleListExercises failed: %v", err)
	}
	if len(out.Exercises) != 1 || out.Exercises[0].Name != "Bench Press" {
		t.Errorf("filter wrong: %+v", out.Exercises)
	}

	if _, _, err := server.handleListExercises(context.Background(), nil, listExercisesInput{MuscleGroup: "Wings"}); err == nil {
		t.Error("expected error for unknown muscle group")
	}
}

func TestHandleGetActiveProgramme(t *testing.T) {
	server, repo := setupServer(t)

	if _, _, err := server.handleGetActiveProgramme(context.Background(), nil, emptyInput{}); err == nil {
		t.Error("expected error with no active programme")
	}

	e := seedExercise(t, repo, "Bench Press", models.MuscleChest)
	seedProgramme(t, repo, e)

	_, out, err := server.handleGetActiveProgramme(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleGetActiveProgramme failed: %v", err)
	}
	if out.Name != "Block" || out.CurrentWeek != 1 {
		t.Errorf("programme wrong: %+v", out)
	}
	if len(out.Days) != 1 || len(out.Days[0].Exercises) != 1 {
		t.Fatalf("days wrong: %+v", out.Days)
	}
	if out.Days[0].Exercises[0].Exercise != "Bench Press" {
		t.Errorf("prescription wrong: %+v", out.Days[0].Exercises[0])
	}
}

func TestHandleLogWorkoutAndSuggestion(t *testing.T) {
	server, repo := setupServer(t)
	e := seedExercise(t, repo, "Bench Press", models.MuscleChest)
	seedProgramme(t, repo, e)

	rir := 1
	_, out, err := server.handleLogWorkout(context.Background(), nil, logWorkoutInput{
		Day: 1,
		Sets: []logSetInput{
			{Exercise: "Bench Press", Weight: 80, Reps: 12, RIR: &rir},
			{Exercise: "Bench Press", Weight: 80, Reps: 12, RIR: &rir},
		},
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}
	if out.Sets != 2 {
		t.Errorf("expected 2 sets, got %d", out.Sets)
	}
	if len(out.Records) == 0 {
		t.Error("expected first-workout records")
	}

	_, suggestion, err := server.handleGetSuggestion(context.Background(), nil, getSuggestionInput{Exercise: "Bench Press"})
	if err != nil {
		t.Fatalf("handleGetSuggestion failed: %v", err)
	}
	if !suggestion.HasHistory {
		t.Error("expected history after logging")
	}
	if suggestion.LastWeight != 80 {
		t.Errorf("LastWeight = %v, want 80", suggestion.LastWeight)
	}
}

func TestHandleLogWorkoutRejectsEmpty(t *testing.T) {
	server, _ := setupServer(t)
	if _, _, err := server.handleLogWorkout(context.Background(), nil, logWorkoutInput{}); err == nil {
		t.Error("expected error for empty workout")
	}
}

func TestHandleAdvanceWeek(t *testing.T) {
	server, repo := setupServer(t)
	e := seedExercise(t, repo, "Bench Press", models.MuscleChest)
	seedProgramme(t, repo, e)

	_, out, err := server.handleAdvanceWeek(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleAdvanceWeek failed: %v", err)
	}
	if out.CurrentWeek != 2 {
		t.Errorf("expected week 2, got %d", out.CurrentWeek)
	}
}

func TestHandleAddBodyMetric(t *testing.T) {
	server, repo := setupServer(t)

	_, _, err := server.handleAddBodyMetric(context.Background(), nil, addBodyMetricInput{Weight: 82.5, Date: "2026-08-01"})
	if err != nil {
		t.Fatalf("handleAddBodyMetric failed: %v", err)
	}

	metrics, err := repo.ListBodyMetrics(10)
	if err != nil {
		t.Fatalf("ListBodyMetrics failed: %v", err)
	}
	if len(metrics) != 1 || metrics[0].Weight != 82.5 {
		t.Errorf("metric not persisted: %+v", metrics)
	}

	if _, _, err := server.handleAddBodyMetric(context.Background(), nil, addBodyMetricInput{Weight: -1}); err == nil {
		t.Error("expected error for non-positive weight")
	}
	if _, _, err := server.handleAddBodyMetric(context.Background(), nil, addBodyMetricInput{Weight: 80, Date: "01/08/2026"}); err == nil {
		t.Error("expected error for bad date format")
	}
}

func TestExportResource(t *testing.T) {
	server, repo := setupServer(t)
	seedExercise(t, repo, "Bench Press", models.MuscleChest)

	result, err := server.handleExportResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleExportResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Contents))
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s", result.Contents[0].MIMEType)
	}
	if !strings.Contains(result.Contents[0].Text, "Bench Press") {
		t.Error("expected exercise in export resource")
	}
}
