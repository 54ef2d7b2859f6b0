// ABOUTME: PersonalRecord and BodyMetric operations.
// ABOUTME: Records are append-only; BestRecordValue backs PR detection after each workout.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// AddPersonalRecord stores a new personal record.
func (d *DB) AddPersonalRecord(pr *models.PersonalRecord) error {
	query := `
		INSERT INTO personal_records (id, exercise_id, type, value, date, workout_log_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		pr.ID.String(),
		pr.ExerciseID.String(),
		string(pr.Type),
		pr.Value,
		pr.Date,
		pr.WorkoutLogID.String(),
		pr.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("add personal record: %w", err)
	}
	return nil
}

// ListPersonalRecords retrieves records, optionally for one exercise, most
// recent first.
func (d *DB) ListPersonalRecords(exerciseID *uuid.UUID, limit int) ([]*models.PersonalRecord, error) {
	query := `
		SELECT id, exercise_id, type, value, date, workout_log_id, created_at
		FROM personal_records
	`
	var args []interface{}
	if exerciseID != nil {
		query += " WHERE exercise_id = ?"
		args = append(args, exerciseID.String())
	}
	query += " ORDER BY date DESC, created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list personal records: %w", err)
	}
	defer rows.Close()

	var records []*models.PersonalRecord
	for rows.Next() {
		var pr models.PersonalRecord
		var idStr, exID, prType, wlID, createdAt string

		err := rows.Scan(&idStr, &exID, &prType, &pr.Value, &pr.Date, &wlID, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan personal record: %w", err)
		}

		pr.ID, _ = uuid.Parse(idStr)
		pr.ExerciseID, _ = uuid.Parse(exID)
		pr.Type = models.PRType(prType)
		pr.WorkoutLogID, _ = uuid.Parse(wlID)
		pr.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, &pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan personal records: %w", err)
	}
	return records, nil
}

// BestRecordValue returns the highest recorded value for an exercise and
// record type. Returns 0 when no record of that type exists.
func (d *DB) BestRecordValue(exerciseID uuid.UUID, prType models.PRType) (float64, error) {
	query := `
		SELECT MAX(value)
		FROM personal_records
		WHERE exercise_id = ? AND type = ?
	`
	var best sql.NullFloat64
	err := d.db.QueryRow(query, exerciseID.String(), string(prType)).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("best record value: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return best.Float64, nil
}

// AddBodyMetric stores a body weight measurement.
func (d *DB) AddBodyMetric(m *models.BodyMetric) error {
	query := `
		INSERT INTO body_metrics (id, date, weight, body_fat, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Date,
		m.Weight,
		m.BodyFat,
		m.Notes,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("add body metric: %w", err)
	}
	return nil
}

// ListBodyMetrics retrieves body metrics, most recent first.
func (d *DB) ListBodyMetrics(limit int) ([]*models.BodyMetric, error) {
	query := `
		SELECT id, date, weight, body_fat, notes, created_at
		FROM body_metrics
		ORDER BY date DESC, created_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}
	defer rows.Close()

	var metrics []*models.BodyMetric
	for rows.Next() {
		var m models.BodyMetric
		var idStr, createdAt string
		var bodyFat sql.NullFloat64
		var notes sql.NullString

		err := rows.Scan(&idStr, &m.Date, &m.Weight, &bodyFat, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan body metric: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		if bodyFat.Valid {
			m.BodyFat = &bodyFat.Float64
		}
		if notes.Valid {
			m.Notes = notes.String
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		metrics = append(metrics, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan body metrics: %w", err)
	}
	return metrics, nil
}
