// ABOUTME: Export and import functionality for training data.
// ABOUTME: Supports JSON, YAML, and Markdown export; import replaces everything in one transaction.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for training data. Every
// collection is included so an import reproduces the store exactly.
type ExportData struct {
	Version           int                        `json:"version" yaml:"version"`
	ExportedAt        time.Time                  `json:"exported_at" yaml:"exported_at"`
	Tool              string                     `json:"tool" yaml:"tool"`
	Exercises         []*models.Exercise         `json:"exercises" yaml:"exercises"`
	Programmes        []*models.Programme        `json:"programmes" yaml:"programmes"`
	Templates         []*models.WorkoutTemplate  `json:"workout_templates" yaml:"workout_templates"`
	TemplateExercises []*models.TemplateExercise `json:"template_exercises" yaml:"template_exercises"`
	WorkoutLogs       []*models.WorkoutLog       `json:"workout_logs" yaml:"workout_logs"`
	SetLogs           []*models.SetLog           `json:"set_logs" yaml:"set_logs"`
	WeekLogs          []*models.WeekLog          `json:"week_logs" yaml:"week_logs"`
	ExerciseFeedback  []*models.ExerciseFeedback `json:"exercise_feedback" yaml:"exercise_feedback"`
	PersonalRecords   []*models.PersonalRecord   `json:"personal_records" yaml:"personal_records"`
	BodyMetrics       []*models.BodyMetric       `json:"body_metrics" yaml:"body_metrics"`
	Settings          []*models.Setting          `json:"settings" yaml:"settings"`
}

// ExportVersion is the current export schema version.
const ExportVersion = 2

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	data := &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "meso",
	}

	var err error
	if data.Exercises, err = d.ListExercises(nil); err != nil {
		return nil, err
	}
	if data.Programmes, err = d.ListProgrammes(); err != nil {
		return nil, err
	}

	for _, p := range data.Programmes {
		templates, err := d.ListTemplates(p.ID)
		if err != nil {
			return nil, err
		}
		data.Templates = append(data.Templates, templates...)

		weekLogs, err := d.ListWeekLogs(p.ID)
		if err != nil {
			return nil, err
		}
		data.WeekLogs = append(data.WeekLogs, weekLogs...)
	}

	for _, t := range data.Templates {
		exercises, err := d.ListTemplateExercises(t.ID)
		if err != nil {
			return nil, err
		}
		data.TemplateExercises = append(data.TemplateExercises, exercises...)
	}

	if data.WorkoutLogs, err = d.ListWorkoutLogs(0); err != nil {
		return nil, err
	}
	for _, w := range data.WorkoutLogs {
		sets, err := d.ListSetLogs(w.ID)
		if err != nil {
			return nil, err
		}
		data.SetLogs = append(data.SetLogs, sets...)

		feedback, err := d.listWorkoutFeedback(w.ID)
		if err != nil {
			return nil, err
		}
		data.ExerciseFeedback = append(data.ExerciseFeedback, feedback...)
	}

	if data.PersonalRecords, err = d.ListPersonalRecords(nil, 0); err != nil {
		return nil, err
	}
	if data.BodyMetrics, err = d.ListBodyMetrics(0); err != nil {
		return nil, err
	}
	if data.Settings, err = d.ListSettings(); err != nil {
		return nil, err
	}

	return data, nil
}

// ImportData replaces the entire store with the contents of an export. The
// clear and every insert run in one transaction, so a failed import leaves
// the existing data untouched.
func (d *DB) ImportData(data *ExportData) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer tx.Rollback()

	// Children before parents so foreign keys never dangle mid-clear.
	tables := []string{
		"personal_records", "exercise_feedback", "set_logs", "workout_logs",
		"week_logs", "template_exercises", "workout_templates", "programmes",
		"exercises", "body_metrics", "settings",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("import: clear %s: %w", table, err)
		}
	}

	for _, e := range data.Exercises {
		groups, err := json.Marshal(e.MuscleGroups)
		if err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO exercises (id, name, muscle_groups, equipment, is_custom, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID.String(), e.Name, string(groups), string(e.Equipment),
			e.IsCustom, e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import exercise %q: %w", e.Name, err)
		}
	}

	for _, p := range data.Programmes {
		targets, err := marshalRIRTargets(p.RIRTargets)
		if err != nil {
			return fmt.Errorf("import programme: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO programmes (id, name, duration_weeks, days_per_week, current_week,
				is_active, start_date, rir_targets, ended_early, end_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID.String(), p.Name, p.DurationWeeks, p.DaysPerWeek, p.CurrentWeek,
			p.IsActive, formatTimePtr(p.StartDate), targets, p.EndedEarly,
			formatTimePtr(p.EndDate), p.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import programme %q: %w", p.Name, err)
		}
	}

	for _, t := range data.Templates {
		_, err = tx.Exec(`
			INSERT INTO workout_templates (id, programme_id, name, day_number, sort_order, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID.String(), t.ProgrammeID.String(), t.Name, t.DayNumber, t.Order,
			t.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import template %q: %w", t.Name, err)
		}
	}

	for _, te := range data.TemplateExercises {
		_, err = tx.Exec(`
			INSERT INTO template_exercises (id, template_id, exercise_id, sort_order,
				target_sets, min_reps, max_reps, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			te.ID.String(), te.TemplateID.String(), te.ExerciseID.String(), te.Order,
			te.TargetSets, te.MinReps, te.MaxReps, te.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import template exercise: %w", err)
		}
	}

	for _, w := range data.WorkoutLogs {
		_, err = tx.Exec(`
			INSERT INTO workout_logs (id, date, template_id, programme_id, week_number,
				start_time, end_time, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			w.ID.String(), w.Date, uuidPtrString(w.TemplateID), uuidPtrString(w.ProgrammeID),
			w.WeekNumber, w.StartTime.Format(time.RFC3339), w.EndTime.Format(time.RFC3339),
			w.Notes, w.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import workout log: %w", err)
		}
	}

	for _, s := range data.SetLogs {
		_, err = tx.Exec(`
			INSERT INTO set_logs (id, workout_log_id, exercise_id, set_number, weight, reps,
				rpe, rir, e1rm, is_warmup, pump_rating, soreness_rating, fatigue_rating, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID.String(), s.WorkoutLogID.String(), s.ExerciseID.String(), s.SetNumber,
			s.Weight, s.Reps, s.RPE, s.RIR, s.E1RM, s.IsWarmup,
			s.PumpRating, s.SorenessRating, s.FatigueRating, s.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import set log: %w", err)
		}
	}

	for _, wl := range data.WeekLogs {
		_, err = tx.Exec(`
			INSERT INTO week_logs (id, programme_id, week_number, completed_at)
			VALUES (?, ?, ?, ?)`,
			wl.ID.String(), wl.ProgrammeID.String(), wl.WeekNumber,
			wl.CompletedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import week log: %w", err)
		}
	}

	for _, fb := range data.ExerciseFeedback {
		_, err = tx.Exec(`
			INSERT INTO exercise_feedback (id, workout_log_id, exercise_id,
				pump_rating, soreness_rating, fatigue_rating, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			fb.ID.String(), fb.WorkoutLogID.String(), fb.ExerciseID.String(),
			fb.PumpRating, fb.SorenessRating, fb.FatigueRating,
			fb.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import exercise feedback: %w", err)
		}
	}

	for _, pr := range data.PersonalRecords {
		_, err = tx.Exec(`
			INSERT INTO personal_records (id, exercise_id, type, value, date, workout_log_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			pr.ID.String(), pr.ExerciseID.String(), string(pr.Type), pr.Value,
			pr.Date, pr.WorkoutLogID.String(), pr.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import personal record: %w", err)
		}
	}

	for _, m := range data.BodyMetrics {
		_, err = tx.Exec(`
			INSERT INTO body_metrics (id, date, weight, body_fat, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID.String(), m.Date, m.Weight, m.BodyFat, m.Notes,
			m.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("import body metric: %w", err)
		}
	}

	for _, s := range data.Settings {
		_, err = tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", s.Key, s.Value)
		if err != nil {
			return fmt.Errorf("import setting %q: %w", s.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown exports a human-readable training log.
func (d *DB) ExportMarkdown() (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}

	exerciseNames := make(map[string]string, len(data.Exercises))
	for _, e := range data.Exercises {
		exerciseNames[e.ID.String()] = e.Name
	}

	setsByWorkout := make(map[string][]*models.SetLog)
	for _, s := range data.SetLogs {
		setsByWorkout[s.WorkoutLogID.String()] = append(setsByWorkout[s.WorkoutLogID.String()], s)
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Training Log - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, w := range data.WorkoutLogs {
		sb.WriteString(fmt.Sprintf("## %s\n\n", w.Date))
		if w.Notes != "" {
			sb.WriteString(w.Notes + "\n\n")
		}
		sb.WriteString("| Exercise | Set | Weight | Reps | RIR |\n")
		sb.WriteString("|----------|-----|--------|------|-----|\n")
		for _, s := range setsByWorkout[w.ID.String()] {
			name := exerciseNames[s.ExerciseID.String()]
			rir := ""
			if v := s.EffectiveRIR(); v != nil {
				rir = fmt.Sprintf("%d", *v)
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %.1f | %d | %s |\n",
				name, s.SetNumber, s.Weight, s.Reps, rir))
		}
		sb.WriteString("\n")
	}

	if len(data.PersonalRecords) > 0 {
		sb.WriteString("## Personal Records\n\n")
		sb.WriteString("| Date | Exercise | Type | Value |\n")
		sb.WriteString("|------|----------|------|-------|\n")
		for _, pr := range data.PersonalRecords {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.1f |\n",
				pr.Date, exerciseNames[pr.ExerciseID.String()], pr.Type, pr.Value))
		}
		sb.WriteString("\n")
	}

	if len(data.BodyMetrics) > 0 {
		sb.WriteString("## Body Metrics\n\n")
		sb.WriteString("| Date | Weight | Body Fat |\n")
		sb.WriteString("|------|--------|----------|\n")
		for _, m := range data.BodyMetrics {
			fat := ""
			if m.BodyFat != nil {
				fat = fmt.Sprintf("%.1f%%", *m.BodyFat)
			}
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %s |\n", m.Date, m.Weight, fat))
		}
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

// listWorkoutFeedback returns the feedback rows recorded in one workout.
func (d *DB) listWorkoutFeedback(workoutLogID uuid.UUID) ([]*models.ExerciseFeedback, error) {
	query := `
		SELECT id, workout_log_id, exercise_id, pump_rating, soreness_rating, fatigue_rating, created_at
		FROM exercise_feedback
		WHERE workout_log_id = ?
		ORDER BY created_at ASC
	`
	rows, err := d.db.Query(query, workoutLogID.String())
	if err != nil {
		return nil, fmt.Errorf("list workout feedback: %w", err)
	}
	defer rows.Close()

	var feedback []*models.ExerciseFeedback
	for rows.Next() {
		var fb models.ExerciseFeedback
		var idStr, wlID, exID, createdAt string

		err := rows.Scan(&idStr, &wlID, &exID, &fb.PumpRating, &fb.SorenessRating, &fb.FatigueRating, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan exercise feedback: %w", err)
		}

		fb.ID, _ = uuid.Parse(idStr)
		fb.WorkoutLogID, _ = uuid.Parse(wlID)
		fb.ExerciseID, _ = uuid.Parse(exID)
		fb.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		feedback = append(feedback, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan exercise feedback: %w", err)
	}
	return feedback, nil
}
