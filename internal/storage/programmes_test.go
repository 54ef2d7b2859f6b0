// ABOUTME: Tests for the programme state machine.
// ABOUTME: Covers single-active activation, week advancement, and early endings.
package storage

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

func TestCreateAndGetProgramme(t *testing.T) {
	db := setupTestDB(t)

	p := models.NewProgramme("Hypertrophy Block", 5, 3)
	p.WithRIRTarget(3, 1)
	if err := db.CreateProgramme(p); err != nil {
		t.Fatalf("CreateProgramme failed: %v", err)
	}

	got, err := db.GetProgramme(p.ID.String())
	if err != nil {
		t.Fatalf("GetProgramme failed: %v", err)
	}
	if got.Name != "Hypertrophy Block" {
		t.Errorf("Name mismatch: got %s", got.Name)
	}
	if got.CurrentWeek != 1 {
		t.Errorf("expected new programme at week 1, got %d", got.CurrentWeek)
	}
	if got.RIRTargets[3] != 1 {
		t.Errorf("RIR override lost: got %v", got.RIRTargets)
	}
}

func TestGetProgrammeByPrefix(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Block A", 4)

	got, err := db.GetProgramme(p.ID.String()[:8])
	if err != nil {
		t.Fatalf("GetProgramme by prefix failed: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, p.ID)
	}

	if _, err := db.GetProgramme("ffffffff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown prefix, got %v", err)
	}
}

func TestStartProgrammeDeactivatesOthers(t *testing.T) {
	db := setupTestDB(t)

	p1 := mustCreateProgramme(t, db, "Block A", 4)
	p2 := mustCreateProgramme(t, db, "Block B", 5)

	if err := db.StartProgramme(p1.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}
	if err := db.StartProgramme(p2.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}

	active, err := db.ActiveProgramme()
	if err != nil {
		t.Fatalf("ActiveProgramme failed: %v", err)
	}
	if active.ID != p2.ID {
		t.Errorf("expected %s active, got %s", p2.ID, active.ID)
	}

	first, err := db.GetProgramme(p1.ID.String())
	if err != nil {
		t.Fatalf("GetProgramme failed: %v", err)
	}
	if first.IsActive {
		t.Error("expected first programme deactivated")
	}
}

func TestStartProgrammeResetsWeek(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Block A", 4)
	if err := db.StartProgramme(p.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}
	if _, err := db.AdvanceWeek(p.ID); err != nil {
		t.Fatalf("AdvanceWeek failed: %v", err)
	}

	// Restarting resets to week 1
	if err := db.StartProgramme(p.ID); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	got, err := db.ActiveProgramme()
	if err != nil {
		t.Fatalf("ActiveProgramme failed: %v", err)
	}
	if got.CurrentWeek != 1 {
		t.Errorf("expected week reset to 1, got %d", got.CurrentWeek)
	}
}

func TestAdvanceWeekRecordsWeekLog(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Block A", 3)
	if err := db.StartProgramme(p.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}

	got, err := db.AdvanceWeek(p.ID)
	if err != nil {
		t.Fatalf("AdvanceWeek failed: %v", err)
	}
	if got.CurrentWeek != 2 {
		t.Errorf("expected week 2, got %d", got.CurrentWeek)
	}

	logs, err := db.ListWeekLogs(p.ID)
	if err != nil {
		t.Fatalf("ListWeekLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 week log, got %d", len(logs))
	}
	// The log records the completed week, not the new one
	if logs[0].WeekNumber != 1 {
		t.Errorf("expected week log for week 1, got %d", logs[0].WeekNumber)
	}
}

func TestAdvanceWeekStopsAtFinalWeek(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Short Block", 2)
	if err := db.StartProgramme(p.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}

	if _, err := db.AdvanceWeek(p.ID); err != nil {
		t.Fatalf("AdvanceWeek failed: %v", err)
	}

	// Already on the final week: advancing is a no-op
	got, err := db.AdvanceWeek(p.ID)
	if err != nil {
		t.Fatalf("AdvanceWeek at final week failed: %v", err)
	}
	if got.CurrentWeek != 2 {
		t.Errorf("expected to stay at week 2, got %d", got.CurrentWeek)
	}

	logs, err := db.ListWeekLogs(p.ID)
	if err != nil {
		t.Fatalf("ListWeekLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected 1 week log after no-op advance, got %d", len(logs))
	}
}

func TestEndProgrammeEarly(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Block A", 6)
	if err := db.StartProgramme(p.ID); err != nil {
		t.Fatalf("StartProgramme failed: %v", err)
	}

	got, err := db.EndProgrammeEarly(p.ID)
	if err != nil {
		t.Fatalf("EndProgrammeEarly failed: %v", err)
	}
	if got.IsActive {
		t.Error("expected programme deactivated")
	}
	if !got.EndedEarly {
		t.Error("expected EndedEarly flag set")
	}
	if got.EndDate == nil {
		t.Error("expected end date set")
	}

	if _, err := db.ActiveProgramme(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected no active programme, got %v", err)
	}

	// Already ended, so ending again is rejected
	if _, err := db.EndProgrammeEarly(p.ID); err == nil {
		t.Error("expected error ending an inactive programme")
	}
}

func TestEndProgrammeEarlyRequiresActive(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Block A", 6)
	if _, err := db.EndProgrammeEarly(p.ID); err == nil {
		t.Error("expected error for never-started programme")
	}

	got, err := db.GetProgramme(p.ID.String())
	if err != nil {
		t.Fatalf("GetProgramme failed: %v", err)
	}
	if got.EndedEarly || got.EndDate != nil {
		t.Error("inactive programme must be left untouched")
	}

	if _, err := db.EndProgrammeEarly(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestDeleteProgrammeCascades(t *testing.T) {
	db := setupTestDB(t)

	p := mustCreateProgramme(t, db, "Block A", 4)
	tmpl := mustCreateTemplate(t, db, p, "Upper", 1)
	e := mustCreateExercise(t, db, "Bench Press", models.MuscleChest)
	te := models.NewTemplateExercise(tmpl.ID, e.ID, 0, 3, 8, 12)
	if err := db.CreateTemplateExercise(te); err != nil {
		t.Fatalf("CreateTemplateExercise failed: %v", err)
	}

	if err := db.DeleteProgramme(p.ID); err != nil {
		t.Fatalf("DeleteProgramme failed: %v", err)
	}

	if _, err := db.GetTemplate(tmpl.ID.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected template deleted with programme, got %v", err)
	}
}
