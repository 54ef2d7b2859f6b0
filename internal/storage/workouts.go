// ABOUTME: WorkoutLog, SetLog, and ExerciseFeedback operations.
// ABOUTME: A workout and its sets are written in one transaction; reads feed the progression engine.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// CreateWorkoutLog stores a workout with all its sets and per-exercise
// feedback in a single transaction.
func (d *DB) CreateWorkoutLog(w *models.WorkoutLog, sets []*models.SetLog, feedback []*models.ExerciseFeedback) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create workout log: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO workout_logs (id, date, template_id, programme_id, week_number,
			start_time, end_time, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID.String(),
		w.Date,
		uuidPtrString(w.TemplateID),
		uuidPtrString(w.ProgrammeID),
		w.WeekNumber,
		w.StartTime.Format(time.RFC3339),
		w.EndTime.Format(time.RFC3339),
		w.Notes,
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create workout log: %w", err)
	}

	for _, s := range sets {
		_, err = tx.Exec(`
			INSERT INTO set_logs (id, workout_log_id, exercise_id, set_number, weight, reps,
				rpe, rir, e1rm, is_warmup, pump_rating, soreness_rating, fatigue_rating, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID.String(),
			s.WorkoutLogID.String(),
			s.ExerciseID.String(),
			s.SetNumber,
			s.Weight,
			s.Reps,
			s.RPE,
			s.RIR,
			s.E1RM,
			s.IsWarmup,
			s.PumpRating,
			s.SorenessRating,
			s.FatigueRating,
			s.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create workout log: insert set %d: %w", s.SetNumber, err)
		}
	}

	for _, fb := range feedback {
		_, err = tx.Exec(`
			INSERT INTO exercise_feedback (id, workout_log_id, exercise_id,
				pump_rating, soreness_rating, fatigue_rating, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			fb.ID.String(),
			fb.WorkoutLogID.String(),
			fb.ExerciseID.String(),
			fb.PumpRating,
			fb.SorenessRating,
			fb.FatigueRating,
			fb.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create workout log: insert feedback: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create workout log: %w", err)
	}
	return nil
}

// GetWorkoutLog retrieves a workout log by ID or ID prefix.
func (d *DB) GetWorkoutLog(idOrPrefix string) (*models.WorkoutLog, error) {
	id, err := d.resolveID("workout_logs", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, template_id, programme_id, week_number,
			start_time, end_time, notes, created_at
		FROM workout_logs
		WHERE id = ?
	`
	return d.scanWorkoutLog(d.db.QueryRow(query, id))
}

// ListWorkoutLogs retrieves workout logs, most recent first.
func (d *DB) ListWorkoutLogs(limit int) ([]*models.WorkoutLog, error) {
	query := `
		SELECT id, date, template_id, programme_id, week_number,
			start_time, end_time, notes, created_at
		FROM workout_logs
		ORDER BY date DESC, start_time DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	defer rows.Close()

	return d.scanWorkoutLogs(rows)
}

// ListSetLogs retrieves all sets for a workout in set order.
func (d *DB) ListSetLogs(workoutLogID uuid.UUID) ([]*models.SetLog, error) {
	query := setLogSelect + `
		WHERE workout_log_id = ?
		ORDER BY set_number ASC
	`
	rows, err := d.db.Query(query, workoutLogID.String())
	if err != nil {
		return nil, fmt.Errorf("list set logs: %w", err)
	}
	defer rows.Close()

	return d.scanSetLogs(rows)
}

// WorkoutForTemplateWeek returns the first workout logged against a template
// in a given programme week, or ErrNotFound. Duplicate logs for the same
// template and week are allowed; reads take the earliest.
func (d *DB) WorkoutForTemplateWeek(templateID uuid.UUID, weekNumber int) (*models.WorkoutLog, error) {
	query := `
		SELECT id, date, template_id, programme_id, week_number,
			start_time, end_time, notes, created_at
		FROM workout_logs
		WHERE template_id = ? AND week_number = ?
		ORDER BY start_time ASC
		LIMIT 1
	`
	return d.scanWorkoutLog(d.db.QueryRow(query, templateID.String(), weekNumber))
}

// LastPerformance returns the most recent workout against the template in
// which the exercise was performed, plus that exercise's working sets from
// it. Warmup sets are excluded. Returns ErrNotFound when the exercise has
// never been logged against the template.
func (d *DB) LastPerformance(templateID, exerciseID uuid.UUID) (*models.WorkoutLog, []*models.SetLog, error) {
	query := `
		SELECT w.id, w.date, w.template_id, w.programme_id, w.week_number,
			w.start_time, w.end_time, w.notes, w.created_at
		FROM workout_logs w
		WHERE w.template_id = ?
			AND EXISTS (
				SELECT 1 FROM set_logs s
				WHERE s.workout_log_id = w.id AND s.exercise_id = ? AND s.is_warmup = 0
			)
		ORDER BY w.date DESC, w.start_time DESC
		LIMIT 1
	`
	w, err := d.scanWorkoutLog(d.db.QueryRow(query, templateID.String(), exerciseID.String()))
	if err != nil {
		return nil, nil, err
	}

	setsQuery := setLogSelect + `
		WHERE workout_log_id = ? AND exercise_id = ? AND is_warmup = 0
		ORDER BY set_number ASC
	`
	rows, err := d.db.Query(setsQuery, w.ID.String(), exerciseID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("last performance: %w", err)
	}
	defer rows.Close()

	sets, err := d.scanSetLogs(rows)
	if err != nil {
		return nil, nil, err
	}
	return w, sets, nil
}

// LatestExerciseFeedback returns the most recent feedback row for an
// exercise across all workouts, or ErrNotFound.
func (d *DB) LatestExerciseFeedback(exerciseID uuid.UUID) (*models.ExerciseFeedback, error) {
	query := `
		SELECT id, workout_log_id, exercise_id, pump_rating, soreness_rating, fatigue_rating, created_at
		FROM exercise_feedback
		WHERE exercise_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`
	var fb models.ExerciseFeedback
	var idStr, wlID, exID, createdAt string

	err := d.db.QueryRow(query, exerciseID.String()).Scan(
		&idStr, &wlID, &exID, &fb.PumpRating, &fb.SorenessRating, &fb.FatigueRating, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("latest exercise feedback: %w", err)
	}

	fb.ID, _ = uuid.Parse(idStr)
	fb.WorkoutLogID, _ = uuid.Parse(wlID)
	fb.ExerciseID, _ = uuid.Parse(exID)
	fb.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &fb, nil
}

const setLogSelect = `
	SELECT id, workout_log_id, exercise_id, set_number, weight, reps,
		rpe, rir, e1rm, is_warmup, pump_rating, soreness_rating, fatigue_rating, created_at
	FROM set_logs`

// scanWorkoutLog scans a single row into a WorkoutLog struct.
func (d *DB) scanWorkoutLog(row *sql.Row) (*models.WorkoutLog, error) {
	var w models.WorkoutLog
	var idStr, startTime, endTime, createdAt string
	var templateID, progID, notes sql.NullString
	var weekNumber sql.NullInt64

	err := row.Scan(&idStr, &w.Date, &templateID, &progID, &weekNumber,
		&startTime, &endTime, &notes, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan workout log: %w", err)
	}

	w.ID, _ = uuid.Parse(idStr)
	w.TemplateID = parseUUIDPtr(templateID)
	w.ProgrammeID = parseUUIDPtr(progID)
	if weekNumber.Valid {
		n := int(weekNumber.Int64)
		w.WeekNumber = &n
	}
	w.StartTime, _ = time.Parse(time.RFC3339, startTime)
	w.EndTime, _ = time.Parse(time.RFC3339, endTime)
	if notes.Valid {
		w.Notes = notes.String
	}
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &w, nil
}

// scanWorkoutLogs scans multiple rows into a slice of WorkoutLogs.
func (d *DB) scanWorkoutLogs(rows *sql.Rows) ([]*models.WorkoutLog, error) {
	var logs []*models.WorkoutLog

	for rows.Next() {
		var w models.WorkoutLog
		var idStr, startTime, endTime, createdAt string
		var templateID, progID, notes sql.NullString
		var weekNumber sql.NullInt64

		err := rows.Scan(&idStr, &w.Date, &templateID, &progID, &weekNumber,
			&startTime, &endTime, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}

		w.ID, _ = uuid.Parse(idStr)
		w.TemplateID = parseUUIDPtr(templateID)
		w.ProgrammeID = parseUUIDPtr(progID)
		if weekNumber.Valid {
			n := int(weekNumber.Int64)
			w.WeekNumber = &n
		}
		w.StartTime, _ = time.Parse(time.RFC3339, startTime)
		w.EndTime, _ = time.Parse(time.RFC3339, endTime)
		if notes.Valid {
			w.Notes = notes.String
		}
		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		logs = append(logs, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan workout logs: %w", err)
	}
	return logs, nil
}

// scanSetLogs scans multiple rows into a slice of SetLogs.
func (d *DB) scanSetLogs(rows *sql.Rows) ([]*models.SetLog, error) {
	var sets []*models.SetLog

	for rows.Next() {
		var s models.SetLog
		var idStr, wlID, exID, createdAt string
		var rpe, e1rm sql.NullFloat64
		var rir, pump, soreness, fatigue sql.NullInt64

		err := rows.Scan(&idStr, &wlID, &exID, &s.SetNumber, &s.Weight, &s.Reps,
			&rpe, &rir, &e1rm, &s.IsWarmup, &pump, &soreness, &fatigue, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan set log: %w", err)
		}

		s.ID, _ = uuid.Parse(idStr)
		s.WorkoutLogID, _ = uuid.Parse(wlID)
		s.ExerciseID, _ = uuid.Parse(exID)
		if rpe.Valid {
			s.RPE = &rpe.Float64
		}
		if rir.Valid {
			n := int(rir.Int64)
			s.RIR = &n
		}
		if e1rm.Valid {
			s.E1RM = &e1rm.Float64
		}
		s.PumpRating = intPtr(pump)
		s.SorenessRating = intPtr(soreness)
		s.FatigueRating = intPtr(fatigue)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sets = append(sets, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan set logs: %w", err)
	}
	return sets, nil
}

func uuidPtrString(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

func parseUUIDPtr(s sql.NullString) *uuid.UUID {
	if !s.Valid || s.String == "" {
		return nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil
	}
	return &id
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
