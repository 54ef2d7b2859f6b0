// ABOUTME: PersonalRecord, BodyMetric, and Setting models.
// ABOUTME: Personal records are append-only; settings are a string-keyed map.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PRType distinguishes what kind of best a personal record tracks.
type PRType string

const (
	PRWeight PRType = "weight"
	PRE1RM   PRType = "e1rm"
)

// PersonalRecord is an append-only best-performance marker for an exercise.
type PersonalRecord struct {
	ID           uuid.UUID `json:"id"`
	ExerciseID   uuid.UUID `json:"exercise_id"`
	Type         PRType    `json:"type"`
	Value        float64   `json:"value"`
	Date         string    `json:"date"`
	WorkoutLogID uuid.UUID `json:"workout_log_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewPersonalRecord creates a personal record entry.
func NewPersonalRecord(exerciseID uuid.UUID, prType PRType, value float64, date string, workoutLogID uuid.UUID) *PersonalRecord {
	return &PersonalRecord{
		ID:           uuid.New(),
		ExerciseID:   exerciseID,
		Type:         prType,
		Value:        value,
		Date:         date,
		WorkoutLogID: workoutLogID,
		CreatedAt:    time.Now(),
	}
}

// BodyMetric is a body-weight / body-fat measurement.
type BodyMetric struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Weight    float64   `json:"weight"`
	BodyFat   *float64  `json:"body_fat,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBodyMetric creates a body metric for today.
func NewBodyMetric(weight float64) *BodyMetric {
	return &BodyMetric{
		ID:        uuid.New(),
		Date:      time.Now().Format(DateFormat),
		Weight:    weight,
		CreatedAt: time.Now(),
	}
}

// WithBodyFat sets the body fat percentage.
func (b *BodyMetric) WithBodyFat(pct float64) *BodyMetric {
	b.BodyFat = &pct
	return b
}

// WithDate overrides the measurement date.
func (b *BodyMetric) WithDate(date string) *BodyMetric {
	b.Date = date
	return b
}

// Setting is one key/value pair in the settings collection. Values are
// JSON-encoded by the storage layer.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Settings keys consumed by the core.
const (
	SettingWeightUnit         = "weightUnit"
	SettingRestTimerDuration  = "restTimerDuration"
	SettingAutoStartRestTimer = "autoStartRestTimer"
	SettingOnboardingComplete = "onboardingComplete"
	SettingUserProfile        = "userProfile"
	SettingNotifications      = "notificationSettings"
)
