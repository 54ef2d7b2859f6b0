// ABOUTME: Exercise catalog CRUD operations for SQLite storage.
// ABOUTME: Muscle groups are stored as a JSON array in a single text column.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// CreateExercise stores a new exercise in the database.
func (d *DB) CreateExercise(e *models.Exercise) error {
	groups, err := json.Marshal(e.MuscleGroups)
	if err != nil {
		return fmt.Errorf("marshal muscle groups: %w", err)
	}

	query := `
		INSERT INTO exercises (id, name, muscle_groups, equipment, is_custom, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		e.ID.String(),
		e.Name,
		string(groups),
		string(e.Equipment),
		e.IsCustom,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by ID.
func (d *DB) GetExercise(id uuid.UUID) (*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_groups, equipment, is_custom, created_at
		FROM exercises
		WHERE id = ?
	`
	return d.scanExercise(d.db.QueryRow(query, id.String()))
}

// GetExerciseByName retrieves an exercise by exact name, case-insensitively.
func (d *DB) GetExerciseByName(name string) (*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_groups, equipment, is_custom, created_at
		FROM exercises
		WHERE LOWER(name) = LOWER(?)
	`
	return d.scanExercise(d.db.QueryRow(query, name))
}

// ListExercises retrieves exercises, optionally filtered by muscle group.
// Results are sorted by name.
func (d *DB) ListExercises(muscleGroup *models.MuscleGroup) ([]*models.Exercise, error) {
	query := `
		SELECT id, name, muscle_groups, equipment, is_custom, created_at
		FROM exercises
		ORDER BY name ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises, err := d.scanExercises(rows)
	if err != nil {
		return nil, err
	}

	if muscleGroup == nil {
		return exercises, nil
	}

	// The muscle-group filter runs in Go: the column holds a JSON array.
	var filtered []*models.Exercise
	for _, e := range exercises {
		for _, mg := range e.MuscleGroups {
			if mg == *muscleGroup {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered, nil
}

// SearchExercises retrieves exercises whose name contains the query,
// case-insensitively.
func (d *DB) SearchExercises(query string) ([]*models.Exercise, error) {
	q := `
		SELECT id, name, muscle_groups, equipment, is_custom, created_at
		FROM exercises
		WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
		ORDER BY name ASC
	`
	rows, err := d.db.Query(q, query)
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}
	defer rows.Close()

	return d.scanExercises(rows)
}

// DeleteExercise removes a custom exercise. Built-in exercises are refused.
func (d *DB) DeleteExercise(id uuid.UUID) error {
	e, err := d.GetExercise(id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if !e.IsCustom {
		return fmt.Errorf("delete exercise: %q is a built-in exercise", e.Name)
	}

	result, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete exercise: %w: %s", ErrNotFound, id)
	}

	return nil
}

// SeedExercises inserts the built-in catalog, skipping names already present.
// Safe to call on every startup.
func (d *DB) SeedExercises(exercises []*models.Exercise) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("seed exercises: %w", err)
	}
	defer tx.Rollback()

	for _, e := range exercises {
		var count int
		err := tx.QueryRow("SELECT COUNT(*) FROM exercises WHERE LOWER(name) = LOWER(?)", e.Name).Scan(&count)
		if err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
		if count > 0 {
			continue
		}

		groups, err := json.Marshal(e.MuscleGroups)
		if err != nil {
			return fmt.Errorf("seed exercises: marshal muscle groups: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO exercises (id, name, muscle_groups, equipment, is_custom, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID.String(),
			e.Name,
			string(groups),
			string(e.Equipment),
			e.IsCustom,
			e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("seed exercises: insert %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed exercises: %w", err)
	}
	return nil
}

// scanExercise scans a single row into an Exercise struct.
func (d *DB) scanExercise(row *sql.Row) (*models.Exercise, error) {
	var e models.Exercise
	var idStr, groups, equipment, createdAt string

	err := row.Scan(&idStr, &e.Name, &groups, &equipment, &e.IsCustom, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.Equipment = models.Equipment(equipment)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if err := json.Unmarshal([]byte(groups), &e.MuscleGroups); err != nil {
		return nil, fmt.Errorf("unmarshal muscle groups: %w", err)
	}

	return &e, nil
}

// scanExercises scans multiple rows into a slice of Exercises.
func (d *DB) scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise

	for rows.Next() {
		var e models.Exercise
		var idStr, groups, equipment, createdAt string

		err := rows.Scan(&idStr, &e.Name, &groups, &equipment, &e.IsCustom, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		e.ID, _ = uuid.Parse(idStr)
		e.Equipment = models.Equipment(equipment)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if err := json.Unmarshal([]byte(groups), &e.MuscleGroups); err != nil {
			return nil, fmt.Errorf("unmarshal muscle groups: %w", err)
		}

		exercises = append(exercises, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan exercises: %w", err)
	}
	return exercises, nil
}
