// ABOUTME: Repository interface for the workout data store.
// ABOUTME: Defines the contract for all collection CRUD, the mesocycle state machine, and export.
package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// ErrNotFound is returned when a record lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for all workout data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Exercise catalog
	CreateExercise(e *models.Exercise) error
	GetExercise(id uuid.UUID) (*models.Exercise, error)
	GetExerciseByName(name string) (*models.Exercise, error)
	ListExercises(muscleGroup *models.MuscleGroup) ([]*models.Exercise, error)
	SearchExercises(query string) ([]*models.Exercise, error)
	DeleteExercise(id uuid.UUID) error
	SeedExercises(exercises []*models.Exercise) error

	// Programmes and the mesocycle state machine
	CreateProgramme(p *models.Programme) error
	GetProgramme(idOrPrefix string) (*models.Programme, error)
	ListProgrammes() ([]*models.Programme, error)
	DeleteProgramme(id uuid.UUID) error
	ActiveProgramme() (*models.Programme, error)
	StartProgramme(id uuid.UUID) error
	AdvanceWeek(id uuid.UUID) (*models.Programme, error)
	EndProgrammeEarly(id uuid.UUID) (*models.Programme, error)
	ListWeekLogs(programmeID uuid.UUID) ([]*models.WeekLog, error)

	// Templates and prescriptions
	CreateTemplate(t *models.WorkoutTemplate) error
	GetTemplate(idOrPrefix string) (*models.WorkoutTemplate, error)
	ListTemplates(programmeID uuid.UUID) ([]*models.WorkoutTemplate, error)
	CreateTemplateExercise(te *models.TemplateExercise) error
	ListTemplateExercises(templateID uuid.UUID) ([]*models.TemplateExercise, error)

	// Workout and set logs
	CreateWorkoutLog(w *models.WorkoutLog, sets []*models.SetLog, feedback []*models.ExerciseFeedback) error
	GetWorkoutLog(idOrPrefix string) (*models.WorkoutLog, error)
	ListWorkoutLogs(limit int) ([]*models.WorkoutLog, error)
	ListSetLogs(workoutLogID uuid.UUID) ([]*models.SetLog, error)
	WorkoutForTemplateWeek(templateID uuid.UUID, weekNumber int) (*models.WorkoutLog, error)
	LastPerformance(templateID, exerciseID uuid.UUID) (*models.WorkoutLog, []*models.SetLog, error)
	LatestExerciseFeedback(exerciseID uuid.UUID) (*models.ExerciseFeedback, error)

	// Personal records and body metrics
	AddPersonalRecord(pr *models.PersonalRecord) error
	ListPersonalRecords(exerciseID *uuid.UUID, limit int) ([]*models.PersonalRecord, error)
	BestRecordValue(exerciseID uuid.UUID, prType models.PRType) (float64, error)
	AddBodyMetric(m *models.BodyMetric) error
	ListBodyMetrics(limit int) ([]*models.BodyMetric, error)

	// Settings
	GetSetting(key string, out any) error
	SetSetting(key string, value any) error
	ListSettings() ([]*models.Setting, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown() (string, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)
