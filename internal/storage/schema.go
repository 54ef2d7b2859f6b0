// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One table per record collection, UUID text keys, cascade deletes for owned rows.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		muscle_groups TEXT NOT NULL,
		equipment TEXT NOT NULL,
		is_custom INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS programmes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		duration_weeks INTEGER NOT NULL,
		days_per_week INTEGER NOT NULL,
		current_week INTEGER NOT NULL DEFAULT 1,
		is_active INTEGER NOT NULL DEFAULT 0,
		start_date DATETIME,
		rir_targets TEXT,
		ended_early INTEGER NOT NULL DEFAULT 0,
		end_date DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS workout_templates (
		id TEXT PRIMARY KEY,
		programme_id TEXT NOT NULL,
		name TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (programme_id) REFERENCES programmes(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS template_exercises (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		target_sets INTEGER NOT NULL,
		min_reps INTEGER NOT NULL,
		max_reps INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (template_id) REFERENCES workout_templates(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id)
	);

	CREATE TABLE IF NOT EXISTS workout_logs (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		template_id TEXT,
		programme_id TEXT,
		week_number INTEGER,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS set_logs (
		id TEXT PRIMARY KEY,
		workout_log_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		set_number INTEGER NOT NULL,
		weight REAL NOT NULL,
		reps INTEGER NOT NULL,
		rpe REAL,
		rir INTEGER,
		e1rm REAL,
		is_warmup INTEGER NOT NULL DEFAULT 0,
		pump_rating INTEGER,
		soreness_rating INTEGER,
		fatigue_rating INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (workout_log_id) REFERENCES workout_logs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS week_logs (
		id TEXT PRIMARY KEY,
		programme_id TEXT NOT NULL,
		week_number INTEGER NOT NULL,
		completed_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercise_feedback (
		id TEXT PRIMARY KEY,
		workout_log_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		pump_rating INTEGER,
		soreness_rating INTEGER,
		fatigue_rating INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (workout_log_id) REFERENCES workout_logs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS personal_records (
		id TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		type TEXT NOT NULL,
		value REAL NOT NULL,
		date TEXT NOT NULL,
		workout_log_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS body_metrics (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		weight REAL NOT NULL,
		body_fat REAL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_name ON exercises(name);
	CREATE INDEX IF NOT EXISTS idx_programmes_active ON programmes(is_active);
	CREATE INDEX IF NOT EXISTS idx_templates_programme ON workout_templates(programme_id);
	CREATE INDEX IF NOT EXISTS idx_template_exercises_template ON template_exercises(template_id);
	CREATE INDEX IF NOT EXISTS idx_workout_logs_template ON workout_logs(template_id);
	CREATE INDEX IF NOT EXISTS idx_workout_logs_date ON workout_logs(date DESC);
	CREATE INDEX IF NOT EXISTS idx_set_logs_workout ON set_logs(workout_log_id);
	CREATE INDEX IF NOT EXISTS idx_set_logs_exercise ON set_logs(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_week_logs_programme ON week_logs(programme_id);
	CREATE INDEX IF NOT EXISTS idx_feedback_exercise ON exercise_feedback(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_records_exercise ON personal_records(exercise_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
