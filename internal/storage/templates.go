// ABOUTME: WorkoutTemplate and TemplateExercise CRUD operations.
// ABOUTME: Templates belong to a programme; exercises within keep a sort order.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// CreateTemplate stores a new workout template in the database.
func (d *DB) CreateTemplate(t *models.WorkoutTemplate) error {
	query := `
		INSERT INTO workout_templates (id, programme_id, name, day_number, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		t.ID.String(),
		t.ProgrammeID.String(),
		t.Name,
		t.DayNumber,
		t.Order,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

// GetTemplate retrieves a workout template by ID or ID prefix.
func (d *DB) GetTemplate(idOrPrefix string) (*models.WorkoutTemplate, error) {
	id, err := d.resolveID("workout_templates", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, programme_id, name, day_number, sort_order, created_at
		FROM workout_templates
		WHERE id = ?
	`
	return d.scanTemplate(d.db.QueryRow(query, id))
}

// ListTemplates retrieves a programme's training days in day order.
func (d *DB) ListTemplates(programmeID uuid.UUID) ([]*models.WorkoutTemplate, error) {
	query := `
		SELECT id, programme_id, name, day_number, sort_order, created_at
		FROM workout_templates
		WHERE programme_id = ?
		ORDER BY day_number ASC, sort_order ASC
	`
	rows, err := d.db.Query(query, programmeID.String())
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.WorkoutTemplate
	for rows.Next() {
		var t models.WorkoutTemplate
		var idStr, progID, createdAt string

		err := rows.Scan(&idStr, &progID, &t.Name, &t.DayNumber, &t.Order, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}

		t.ID, _ = uuid.Parse(idStr)
		t.ProgrammeID, _ = uuid.Parse(progID)
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		templates = append(templates, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan templates: %w", err)
	}
	return templates, nil
}

// CreateTemplateExercise stores a prescription within a template.
func (d *DB) CreateTemplateExercise(te *models.TemplateExercise) error {
	if te.MinReps > te.MaxReps {
		return fmt.Errorf("create template exercise: min reps %d exceeds max reps %d", te.MinReps, te.MaxReps)
	}

	query := `
		INSERT INTO template_exercises (id, template_id, exercise_id, sort_order,
			target_sets, min_reps, max_reps, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		te.ID.String(),
		te.TemplateID.String(),
		te.ExerciseID.String(),
		te.Order,
		te.TargetSets,
		te.MinReps,
		te.MaxReps,
		te.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create template exercise: %w", err)
	}
	return nil
}

// ListTemplateExercises retrieves a template's prescriptions in sort order.
func (d *DB) ListTemplateExercises(templateID uuid.UUID) ([]*models.TemplateExercise, error) {
	query := `
		SELECT id, template_id, exercise_id, sort_order, target_sets, min_reps, max_reps, created_at
		FROM template_exercises
		WHERE template_id = ?
		ORDER BY sort_order ASC
	`
	rows, err := d.db.Query(query, templateID.String())
	if err != nil {
		return nil, fmt.Errorf("list template exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.TemplateExercise
	for rows.Next() {
		var te models.TemplateExercise
		var idStr, templID, exID, createdAt string

		err := rows.Scan(&idStr, &templID, &exID, &te.Order,
			&te.TargetSets, &te.MinReps, &te.MaxReps, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}

		te.ID, _ = uuid.Parse(idStr)
		te.TemplateID, _ = uuid.Parse(templID)
		te.ExerciseID, _ = uuid.Parse(exID)
		te.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		exercises = append(exercises, &te)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan template exercises: %w", err)
	}
	return exercises, nil
}

// scanTemplate scans a single row into a WorkoutTemplate struct.
func (d *DB) scanTemplate(row *sql.Row) (*models.WorkoutTemplate, error) {
	var t models.WorkoutTemplate
	var idStr, progID, createdAt string

	err := row.Scan(&idStr, &progID, &t.Name, &t.DayNumber, &t.Order, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan template: %w", err)
	}

	t.ID, _ = uuid.Parse(idStr)
	t.ProgrammeID, _ = uuid.Parse(progID)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &t, nil
}
