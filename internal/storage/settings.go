// ABOUTME: Settings key/value store operations.
// ABOUTME: Values are JSON-encoded so callers can store strings, numbers, and structs.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/liftlab/meso/internal/models"
)

// GetSetting decodes the value for a key into out. Returns ErrNotFound when
// the key has never been set.
func (d *DB) GetSetting(key string, out any) error {
	var value string
	err := d.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("get setting %q: %w", key, ErrNotFound)
		}
		return fmt.Errorf("get setting %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("decode setting %q: %w", key, err)
	}
	return nil
}

// SetSetting stores a value under a key, replacing any previous value.
func (d *DB) SetSetting(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}

	_, err = d.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// ListSettings retrieves all settings with their raw JSON values.
func (d *DB) ListSettings() ([]*models.Setting, error) {
	rows, err := d.db.Query("SELECT key, value FROM settings ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	return settings, nil
}
