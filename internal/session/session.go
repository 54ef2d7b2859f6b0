// ABOUTME: Live workout session state, persisted as a JSON file in the data dir.
// ABOUTME: Sets accumulate in the state file; Finish batches everything into storage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/progression"
	"github.com/liftlab/meso/internal/stats"
	"github.com/liftlab/meso/internal/storage"
)

// ErrNoSession is returned when no workout session is in progress.
var ErrNoSession = errors.New("no workout in progress")

// ErrSessionActive is returned when a session already exists.
var ErrSessionActive = errors.New("a workout is already in progress")

// StateFile is the name of the session file inside the data dir.
const StateFile = "session.json"

// Set is one set recorded during the live session.
type Set struct {
	ExerciseID     uuid.UUID `json:"exercise_id"`
	SetNumber      int       `json:"set_number"`
	Weight         float64   `json:"weight"`
	Reps           int       `json:"reps"`
	RPE            *float64  `json:"rpe,omitempty"`
	RIR            *int      `json:"rir,omitempty"`
	IsWarmup       bool      `json:"is_warmup"`
	PumpRating     *int      `json:"pump_rating,omitempty"`
	SorenessRating *int      `json:"soreness_rating,omitempty"`
	FatigueRating  *int      `json:"fatigue_rating,omitempty"`
}

// State is the in-progress workout. TemplateID, ProgrammeID, and WeekNumber
// are set only for programme workouts.
type State struct {
	TemplateID  *uuid.UUID `json:"template_id,omitempty"`
	ProgrammeID *uuid.UUID `json:"programme_id,omitempty"`
	WeekNumber  *int       `json:"week_number,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	Notes       string     `json:"notes,omitempty"`
	Sets        []Set      `json:"sets"`
}

// Result summarizes a finished workout.
type Result struct {
	Workout *models.WorkoutLog
	Sets    []*models.SetLog
	Records []*models.PersonalRecord
}

// Manager owns the session state file and finishes sessions into storage.
type Manager struct {
	path string
	repo storage.Repository
}

// NewManager creates a session manager writing its state under dataDir.
func NewManager(dataDir string, repo storage.Repository) *Manager {
	return &Manager{path: filepath.Join(dataDir, StateFile), repo: repo}
}

// Active loads the current session, or ErrNoSession.
func (m *Manager) Active() (*State, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Start begins a new session. For a programme workout the template's
// programme and the programme's current week are captured at start time, so
// a later advance does not shift the log.
func (m *Manager) Start(template *models.WorkoutTemplate, programme *models.Programme) (*State, error) {
	if _, err := m.Active(); err == nil {
		return nil, ErrSessionActive
	} else if !errors.Is(err, ErrNoSession) {
		return nil, err
	}

	s := &State{StartTime: time.Now()}
	if template != nil && programme != nil {
		s.TemplateID = &template.ID
		s.ProgrammeID = &programme.ID
		week := programme.CurrentWeek
		s.WeekNumber = &week
	}

	if err := m.save(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddSet appends a set to the session. Set numbers run per exercise in the
// order sets were added.
func (m *Manager) AddSet(set Set) (*State, error) {
	s, err := m.Active()
	if err != nil {
		return nil, err
	}

	n := 1
	for _, existing := range s.Sets {
		if existing.ExerciseID == set.ExerciseID {
			n++
		}
	}
	set.SetNumber = n
	s.Sets = append(s.Sets, set)

	if err := m.save(s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSet replaces the set at index (0-based across the whole session),
// keeping its exercise and set number.
func (m *Manager) UpdateSet(index int, weight float64, reps int, rpe *float64, rir *int) (*State, error) {
	s, err := m.Active()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.Sets) {
		return nil, fmt.Errorf("no set at index %d", index)
	}

	s.Sets[index].Weight = weight
	s.Sets[index].Reps = reps
	s.Sets[index].RPE = rpe
	s.Sets[index].RIR = rir

	if err := m.save(s); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteSet removes the set at index and renumbers the remaining sets of
// that exercise.
func (m *Manager) DeleteSet(index int) (*State, error) {
	s, err := m.Active()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.Sets) {
		return nil, fmt.Errorf("no set at index %d", index)
	}

	exerciseID := s.Sets[index].ExerciseID
	s.Sets = append(s.Sets[:index], s.Sets[index+1:]...)

	n := 1
	for i := range s.Sets {
		if s.Sets[i].ExerciseID == exerciseID {
			s.Sets[i].SetNumber = n
			n++
		}
	}

	if err := m.save(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Finish persists the session as a workout log with all its sets and
// per-exercise feedback in one storage transaction, runs PR detection over
// the working sets, and clears the state file. A failed write keeps the
// state file so the session can be finished again.
func (m *Manager) Finish(notes string) (*Result, error) {
	s, err := m.Active()
	if err != nil {
		return nil, err
	}

	w := models.NewWorkoutLog(s.StartTime)
	w.EndTime = time.Now()
	if s.TemplateID != nil && s.ProgrammeID != nil && s.WeekNumber != nil {
		w.WithTemplate(*s.TemplateID, *s.ProgrammeID, *s.WeekNumber)
	}
	if notes != "" {
		w.WithNotes(notes)
	} else if s.Notes != "" {
		w.WithNotes(s.Notes)
	}

	sets := make([]*models.SetLog, 0, len(s.Sets))
	for _, set := range s.Sets {
		sl := models.NewSetLog(w.ID, set.ExerciseID, set.SetNumber, set.Weight, set.Reps)
		if set.RPE != nil {
			sl.WithRPE(*set.RPE)
		}
		if set.RIR != nil {
			sl.WithRIR(*set.RIR)
		}
		if set.IsWarmup {
			sl.WithWarmup()
		} else {
			sl.WithE1RM(progression.EstimateOneRepMax(set.Weight, set.Reps))
		}
		sl.WithRatings(set.PumpRating, set.SorenessRating, set.FatigueRating)
		sets = append(sets, sl)
	}

	feedback := deriveFeedback(w.ID, sets)

	if err := m.repo.CreateWorkoutLog(w, sets, feedback); err != nil {
		return nil, err
	}

	records, err := stats.DetectPRs(w, sets, m.repo)
	if err != nil {
		return nil, err
	}
	for _, pr := range records {
		if err := m.repo.AddPersonalRecord(pr); err != nil {
			return nil, err
		}
	}

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("clear session: %w", err)
	}

	return &Result{Workout: w, Sets: sets, Records: records}, nil
}

// Cancel discards the session without persisting anything.
func (m *Manager) Cancel() error {
	if err := os.Remove(m.path); err != nil {
		if os.IsNotExist(err) {
			return ErrNoSession
		}
		return fmt.Errorf("cancel session: %w", err)
	}
	return nil
}

// deriveFeedback summarizes each exercise from the ratings on its last
// non-warmup set. Exercises with no ratings produce no feedback row.
func deriveFeedback(workoutLogID uuid.UUID, sets []*models.SetLog) []*models.ExerciseFeedback {
	last := make(map[uuid.UUID]*models.SetLog)
	var order []uuid.UUID

	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		if _, seen := last[s.ExerciseID]; !seen {
			order = append(order, s.ExerciseID)
		}
		last[s.ExerciseID] = s
	}

	var feedback []*models.ExerciseFeedback
	for _, exID := range order {
		s := last[exID]
		if s.PumpRating == nil && s.SorenessRating == nil && s.FatigueRating == nil {
			continue
		}
		feedback = append(feedback, models.NewExerciseFeedback(
			workoutLogID, exID, s.PumpRating, s.SorenessRating, s.FatigueRating))
	}
	return feedback
}

func (m *Manager) save(s *State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
