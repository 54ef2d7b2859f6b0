// ABOUTME: Programme CRUD and mesocycle state machine operations.
// ABOUTME: Activation deactivates every other programme inside one transaction.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// CreateProgramme stores a new programme in the database.
func (d *DB) CreateProgramme(p *models.Programme) error {
	targets, err := marshalRIRTargets(p.RIRTargets)
	if err != nil {
		return fmt.Errorf("create programme: %w", err)
	}

	query := `
		INSERT INTO programmes (id, name, duration_weeks, days_per_week, current_week,
			is_active, start_date, rir_targets, ended_early, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		p.ID.String(),
		p.Name,
		p.DurationWeeks,
		p.DaysPerWeek,
		p.CurrentWeek,
		p.IsActive,
		formatTimePtr(p.StartDate),
		targets,
		p.EndedEarly,
		formatTimePtr(p.EndDate),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create programme: %w", err)
	}
	return nil
}

// GetProgramme retrieves a programme by ID or ID prefix.
func (d *DB) GetProgramme(idOrPrefix string) (*models.Programme, error) {
	id, err := d.resolveID("programmes", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, duration_weeks, days_per_week, current_week,
			is_active, start_date, rir_targets, ended_early, end_date, created_at
		FROM programmes
		WHERE id = ?
	`
	return d.scanProgramme(d.db.QueryRow(query, id))
}

// ListProgrammes retrieves all programmes, most recently created first.
func (d *DB) ListProgrammes() ([]*models.Programme, error) {
	query := `
		SELECT id, name, duration_weeks, days_per_week, current_week,
			is_active, start_date, rir_targets, ended_early, end_date, created_at
		FROM programmes
		ORDER BY created_at DESC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list programmes: %w", err)
	}
	defer rows.Close()

	return d.scanProgrammes(rows)
}

// DeleteProgramme removes a programme and its templates (cascade delete).
func (d *DB) DeleteProgramme(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM programmes WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete programme: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete programme: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete programme: %w: %s", ErrNotFound, id)
	}

	return nil
}

// ActiveProgramme returns the currently active programme, or ErrNotFound
// when no programme is active.
func (d *DB) ActiveProgramme() (*models.Programme, error) {
	query := `
		SELECT id, name, duration_weeks, days_per_week, current_week,
			is_active, start_date, rir_targets, ended_early, end_date, created_at
		FROM programmes
		WHERE is_active = 1
		LIMIT 1
	`
	return d.scanProgramme(d.db.QueryRow(query))
}

// StartProgramme activates a programme: every other programme is deactivated
// and the target reset to week 1 with a fresh start date, all in one
// transaction so a crash cannot leave two programmes active.
func (d *DB) StartProgramme(id uuid.UUID) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("start programme: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE programmes SET is_active = 0"); err != nil {
		return fmt.Errorf("start programme: deactivate: %w", err)
	}

	result, err := tx.Exec(`
		UPDATE programmes
		SET is_active = 1, current_week = 1, start_date = ?, ended_early = 0, end_date = NULL
		WHERE id = ?`,
		time.Now().Format(time.RFC3339), id.String(),
	)
	if err != nil {
		return fmt.Errorf("start programme: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("start programme: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("start programme: %w: %s", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("start programme: %w", err)
	}
	return nil
}

// AdvanceWeek moves the programme to the next week and records a week log
// for the week just completed. Once the final week is reached the call is a
// no-op and the programme is returned unchanged.
func (d *DB) AdvanceWeek(id uuid.UUID) (*models.Programme, error) {
	p, err := d.GetProgramme(id.String())
	if err != nil {
		return nil, err
	}

	if p.CurrentWeek >= p.DurationWeeks {
		return p, nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("advance week: %w", err)
	}
	defer tx.Rollback()

	wl := models.NewWeekLog(p.ID, p.CurrentWeek)
	_, err = tx.Exec(`
		INSERT INTO week_logs (id, programme_id, week_number, completed_at)
		VALUES (?, ?, ?, ?)`,
		wl.ID.String(), wl.ProgrammeID.String(), wl.WeekNumber,
		wl.CompletedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("advance week: log week: %w", err)
	}

	_, err = tx.Exec("UPDATE programmes SET current_week = current_week + 1 WHERE id = ?", id.String())
	if err != nil {
		return nil, fmt.Errorf("advance week: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("advance week: %w", err)
	}

	p.CurrentWeek++
	return p, nil
}

// EndProgrammeEarly deactivates a programme before its final week, marking
// it as ended early with the current date. Only an active programme can be
// ended.
func (d *DB) EndProgrammeEarly(id uuid.UUID) (*models.Programme, error) {
	now := time.Now()
	result, err := d.db.Exec(`
		UPDATE programmes
		SET is_active = 0, ended_early = 1, end_date = ?
		WHERE id = ? AND is_active = 1`,
		now.Format(time.RFC3339), id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("end programme: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("end programme: %w", err)
	}
	if affected == 0 {
		if _, err := d.GetProgramme(id.String()); err != nil {
			return nil, fmt.Errorf("end programme: %w", err)
		}
		return nil, fmt.Errorf("end programme: %s is not active", id)
	}

	return d.GetProgramme(id.String())
}

// ListWeekLogs retrieves completed-week records for a programme in week order.
func (d *DB) ListWeekLogs(programmeID uuid.UUID) ([]*models.WeekLog, error) {
	query := `
		SELECT id, programme_id, week_number, completed_at
		FROM week_logs
		WHERE programme_id = ?
		ORDER BY week_number ASC
	`
	rows, err := d.db.Query(query, programmeID.String())
	if err != nil {
		return nil, fmt.Errorf("list week logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.WeekLog
	for rows.Next() {
		var wl models.WeekLog
		var idStr, progID, completedAt string

		if err := rows.Scan(&idStr, &progID, &wl.WeekNumber, &completedAt); err != nil {
			return nil, fmt.Errorf("scan week log: %w", err)
		}

		wl.ID, _ = uuid.Parse(idStr)
		wl.ProgrammeID, _ = uuid.Parse(progID)
		wl.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		logs = append(logs, &wl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan week logs: %w", err)
	}
	return logs, nil
}

// resolveID finds a full ID in the given table from a prefix.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := fmt.Sprintf("SELECT id FROM %s WHERE id LIKE ? || '%%'", table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanProgramme scans a single row into a Programme struct.
func (d *DB) scanProgramme(row *sql.Row) (*models.Programme, error) {
	var p models.Programme
	var idStr, createdAt string
	var startDate, endDate, targets sql.NullString

	err := row.Scan(&idStr, &p.Name, &p.DurationWeeks, &p.DaysPerWeek, &p.CurrentWeek,
		&p.IsActive, &startDate, &targets, &p.EndedEarly, &endDate, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan programme: %w", err)
	}

	p.ID, _ = uuid.Parse(idStr)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.StartDate = parseTimePtr(startDate)
	p.EndDate = parseTimePtr(endDate)
	if targets.Valid && targets.String != "" {
		p.RIRTargets, err = unmarshalRIRTargets(targets.String)
		if err != nil {
			return nil, fmt.Errorf("scan programme: %w", err)
		}
	}

	return &p, nil
}

// scanProgrammes scans multiple rows into a slice of Programmes.
func (d *DB) scanProgrammes(rows *sql.Rows) ([]*models.Programme, error) {
	var programmes []*models.Programme

	for rows.Next() {
		var p models.Programme
		var idStr, createdAt string
		var startDate, endDate, targets sql.NullString

		err := rows.Scan(&idStr, &p.Name, &p.DurationWeeks, &p.DaysPerWeek, &p.CurrentWeek,
			&p.IsActive, &startDate, &targets, &p.EndedEarly, &endDate, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan programme: %w", err)
		}

		p.ID, _ = uuid.Parse(idStr)
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		p.StartDate = parseTimePtr(startDate)
		p.EndDate = parseTimePtr(endDate)
		if targets.Valid && targets.String != "" {
			p.RIRTargets, err = unmarshalRIRTargets(targets.String)
			if err != nil {
				return nil, fmt.Errorf("scan programme: %w", err)
			}
		}

		programmes = append(programmes, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan programmes: %w", err)
	}
	return programmes, nil
}

// marshalRIRTargets serializes the week->RIR override map. JSON objects need
// string keys, so weeks are stringified.
func marshalRIRTargets(targets map[int]int) (sql.NullString, error) {
	if len(targets) == 0 {
		return sql.NullString{}, nil
	}
	m := make(map[string]int, len(targets))
	for week, rir := range targets {
		m[strconv.Itoa(week)] = rir
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal rir targets: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func unmarshalRIRTargets(s string) (map[int]int, error) {
	var m map[string]int
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("unmarshal rir targets: %w", err)
	}
	targets := make(map[int]int, len(m))
	for week, rir := range m {
		n, err := strconv.Atoi(week)
		if err != nil {
			return nil, fmt.Errorf("unmarshal rir targets: bad week %q", week)
		}
		targets[n] = rir
	}
	return targets, nil
}

func formatTimePtr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
