// ABOUTME: MCP tool implementations for the workout store.
// ABOUTME: Exposes the catalog, programme state, suggestions, logging, and stats.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
	"github.com/liftlab/meso/internal/progression"
	"github.com/liftlab/meso/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises from the catalog, optionally filtered by muscle group or name",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_programme",
		Description: "Get the active programme with its training days and prescriptions",
	}, s.handleGetActiveProgramme)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_suggestion",
		Description: "Get the next-session weight and rep suggestion for an exercise in the active programme",
	}, s.handleGetSuggestion)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a complete workout with its sets",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "advance_week",
		Description: "Complete the active programme's current week and move to the next",
	}, s.handleAdvanceWeek)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get training statistics: totals, streak, and weekly volume",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_body_metric",
		Description: "Record a body weight measurement",
	}, s.handleAddBodyMetric)
}

// Tool input/output types

type listExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (Chest, Back, Shoulders, Biceps, Triceps, Forearms, Traps, Core, Quadriceps, Hamstrings, Glutes, Calves, Adductors)"`
	Query       string `json:"query,omitempty" jsonschema:"Filter by name fragment"`
}

type exerciseEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MuscleGroups []string `json:"muscle_groups"`
	Equipment    string   `json:"equipment"`
}

type listExercisesOutput struct {
	Exercises []exerciseEntry `json:"exercises"`
}

type emptyInput struct{}

type prescriptionEntry struct {
	Exercise   string `json:"exercise"`
	TargetSets int    `json:"target_sets"`
	MinReps    int    `json:"min_reps"`
	MaxReps    int    `json:"max_reps"`
}

type dayEntry struct {
	DayNumber int                 `json:"day_number"`
	Name      string              `json:"name"`
	Exercises []prescriptionEntry `json:"exercises"`
}

type programmeOutput struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CurrentWeek   int        `json:"current_week"`
	DurationWeeks int        `json:"duration_weeks"`
	TargetRIR     int        `json:"target_rir"`
	Days          []dayEntry `json:"days"`
}

type getSuggestionInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
	Day      int    `json:"day,omitempty" jsonschema:"Training day number; defaults to the first day containing the exercise"`
}

type logSetInput struct {
	Exercise string   `json:"exercise" jsonschema:"Exercise name"`
	Weight   float64  `json:"weight" jsonschema:"Weight lifted"`
	Reps     int      `json:"reps" jsonschema:"Reps performed"`
	RIR      *int     `json:"rir,omitempty" jsonschema:"Reps in reserve (0-5)"`
	RPE      *float64 `json:"rpe,omitempty" jsonschema:"Rating of perceived exertion (1-10)"`
	Warmup   bool     `json:"warmup,omitempty" jsonschema:"Mark as a warmup set"`
}

type logWorkoutInput struct {
	Day   int           `json:"day,omitempty" jsonschema:"Programme day number; omit for a freeform workout"`
	Sets  []logSetInput `json:"sets" jsonschema:"Sets in the order performed"`
	Notes string        `json:"notes,omitempty" jsonschema:"Workout notes"`
}

type logWorkoutOutput struct {
	ID      string   `json:"id"`
	Sets    int      `json:"sets"`
	Records []string `json:"new_records,omitempty"`
	Message string   `json:"message"`
}

type advanceWeekOutput struct {
	CurrentWeek int    `json:"current_week"`
	TargetRIR   int    `json:"target_rir"`
	Message     string `json:"message"`
}

type statsOutput struct {
	Totals       stats.Totals       `json:"totals"`
	Streak       int                `json:"streak_days"`
	WeeklyVolume []stats.WeekVolume `json:"weekly_volume"`
}

type addBodyMetricInput struct {
	Weight  float64  `json:"weight" jsonschema:"Body weight"`
	BodyFat *float64 `json:"body_fat,omitempty" jsonschema:"Body fat percentage"`
	Date    string   `json:"date,omitempty" jsonschema:"Measurement date (YYYY-MM-DD), defaults to today"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, listExercisesOutput, error) {
	var exercises []*models.Exercise
	var err error

	if input.Query != "" {
		exercises, err = s.repo.SearchExercises(input.Query)
	} else {
		var muscle *models.MuscleGroup
		if input.MuscleGroup != "" {
			if !models.IsValidMuscleGroup(input.MuscleGroup) {
				return nil, listExercisesOutput{}, fmt.Errorf("unknown muscle group: %s", input.MuscleGroup)
			}
			mg := models.MuscleGroup(input.MuscleGroup)
			muscle = &mg
		}
		exercises, err = s.repo.ListExercises(muscle)
	}
	if err != nil {
		return nil, listExercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}

	out := listExercisesOutput{}
	for _, e := range exercises {
		groups := make([]string, 0, len(e.MuscleGroups))
		for _, g := range e.MuscleGroups {
			groups = append(groups, string(g))
		}
		out.Exercises = append(out.Exercises, exerciseEntry{
			ID:           e.ID.String(),
			Name:         e.Name,
			MuscleGroups: groups,
			Equipment:    string(e.Equipment),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetActiveProgramme(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, programmeOutput, error) {
	p, err := s.repo.ActiveProgramme()
	if err != nil {
		return nil, programmeOutput{}, fmt.Errorf("no active programme")
	}

	out := programmeOutput{
		ID:            p.ID.String(),
		Name:          p.Name,
		CurrentWeek:   p.CurrentWeek,
		DurationWeeks: p.DurationWeeks,
		TargetRIR:     progression.TargetRIR(p.RIRTargets, p.CurrentWeek, p.DurationWeeks),
	}

	templates, err := s.repo.ListTemplates(p.ID)
	if err != nil {
		return nil, programmeOutput{}, fmt.Errorf("failed to list templates: %w", err)
	}
	for _, t := range templates {
		day := dayEntry{DayNumber: t.DayNumber, Name: t.Name}
		prescriptions, err := s.repo.ListTemplateExercises(t.ID)
		if err != nil {
			return nil, programmeOutput{}, fmt.Errorf("failed to list template exercises: %w", err)
		}
		for _, te := range prescriptions {
			e, err := s.repo.GetExercise(te.ExerciseID)
			if err != nil {
				return nil, programmeOutput{}, fmt.Errorf("failed to load exercise: %w", err)
			}
			day.Exercises = append(day.Exercises, prescriptionEntry{
				Exercise:   e.Name,
				TargetSets: te.TargetSets,
				MinReps:    te.MinReps,
				MaxReps:    te.MaxReps,
			})
		}
		out.Days = append(out.Days, day)
	}
	return nil, out, nil
}

func (s *Server) handleGetSuggestion(ctx context.Context, req *mcp.CallToolRequest, input getSuggestionInput) (*mcp.CallToolResult, progression.Suggestion, error) {
	p, err := s.repo.ActiveProgramme()
	if err != nil {
		return nil, progression.Suggestion{}, fmt.Errorf("no active programme")
	}

	e, err := s.resolveExercise(input.Exercise)
	if err != nil {
		return nil, progression.Suggestion{}, err
	}

	templates, err := s.repo.ListTemplates(p.ID)
	if err != nil {
		return nil, progression.Suggestion{}, fmt.Errorf("failed to list templates: %w", err)
	}
	for _, t := range templates {
		if input.Day > 0 && t.DayNumber != input.Day {
			continue
		}
		prescriptions, err := s.repo.ListTemplateExercises(t.ID)
		if err != nil {
			return nil, progression.Suggestion{}, fmt.Errorf("failed to list template exercises: %w", err)
		}
		for _, te := range prescriptions {
			if te.ExerciseID == e.ID {
				return nil, s.engine.Suggest(p, te), nil
			}
		}
	}
	return nil, progression.Suggestion{}, fmt.Errorf("%q is not prescribed in the active programme", e.Name)
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	if len(input.Sets) == 0 {
		return nil, logWorkoutOutput{}, fmt.Errorf("workout has no sets")
	}

	w := models.NewWorkoutLog(time.Now())
	w.EndTime = time.Now()
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}

	if input.Day > 0 {
		p, err := s.repo.ActiveProgramme()
		if err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("no active programme for day %d", input.Day)
		}
		templates, err := s.repo.ListTemplates(p.ID)
		if err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("failed to list templates: %w", err)
		}
		found := false
		for _, t := range templates {
			if t.DayNumber == input.Day {
				w.WithTemplate(t.ID, p.ID, p.CurrentWeek)
				found = true
				break
			}
		}
		if !found {
			return nil, logWorkoutOutput{}, fmt.Errorf("programme has no day %d", input.Day)
		}
	}

	counts := make(map[uuid.UUID]int)
	sets := make([]*models.SetLog, 0, len(input.Sets))
	for _, in := range input.Sets {
		e, err := s.resolveExercise(in.Exercise)
		if err != nil {
			return nil, logWorkoutOutput{}, err
		}
		counts[e.ID]++

		sl := models.NewSetLog(w.ID, e.ID, counts[e.ID], in.Weight, in.Reps)
		if in.RIR != nil {
			sl.WithRIR(*in.RIR)
		}
		if in.RPE != nil {
			sl.WithRPE(*in.RPE)
		}
		if in.Warmup {
			sl.WithWarmup()
		} else {
			sl.WithE1RM(progression.EstimateOneRepMax(in.Weight, in.Reps))
		}
		sets = append(sets, sl)
	}

	if err := s.repo.CreateWorkoutLog(w, sets, nil); err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	records, err := stats.DetectPRs(w, sets, s.repo)
	if err != nil {
		return nil, logWorkoutOutput{}, err
	}
	out := logWorkoutOutput{
		ID:      w.ID.String(),
		Sets:    len(sets),
		Message: "workout logged",
	}
	for _, pr := range records {
		if err := s.repo.AddPersonalRecord(pr); err != nil {
			return nil, logWorkoutOutput{}, err
		}
		e, err := s.repo.GetExercise(pr.ExerciseID)
		if err != nil {
			return nil, logWorkoutOutput{}, err
		}
		out.Records = append(out.Records, fmt.Sprintf("%s %s %.1f", e.Name, pr.Type, pr.Value))
	}
	return nil, out, nil
}

func (s *Server) handleAdvanceWeek(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, advanceWeekOutput, error) {
	p, err := s.repo.ActiveProgramme()
	if err != nil {
		return nil, advanceWeekOutput{}, fmt.Errorf("no active programme")
	}

	before := p.CurrentWeek
	p, err = s.repo.AdvanceWeek(p.ID)
	if err != nil {
		return nil, advanceWeekOutput{}, err
	}

	out := advanceWeekOutput{
		CurrentWeek: p.CurrentWeek,
		TargetRIR:   progression.TargetRIR(p.RIRTargets, p.CurrentWeek, p.DurationWeeks),
	}
	if p.CurrentWeek == before {
		out.Message = "already in the final week"
	} else {
		out.Message = fmt.Sprintf("advanced to week %d of %d", p.CurrentWeek, p.DurationWeeks)
	}
	return nil, out, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, statsOutput, error) {
	now := time.Now()

	logs, err := s.repo.ListWorkoutLogs(0)
	if err != nil {
		return nil, statsOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}

	setsByLog := make(map[uuid.UUID][]*models.SetLog, len(logs))
	for _, w := range logs {
		sets, err := s.repo.ListSetLogs(w.ID)
		if err != nil {
			return nil, statsOutput{}, err
		}
		setsByLog[w.ID] = sets
	}

	return nil, statsOutput{
		Totals:       stats.WorkoutTotals(logs, now),
		Streak:       stats.CurrentStreak(logs, now),
		WeeklyVolume: stats.WeeklyVolume(logs, setsByLog, 8, now),
	}, nil
}

func (s *Server) handleAddBodyMetric(ctx context.Context, req *mcp.CallToolRequest, input addBodyMetricInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Weight <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("weight must be positive")
	}

	m := models.NewBodyMetric(input.Weight)
	if input.BodyFat != nil {
		m.WithBodyFat(*input.BodyFat)
	}
	if input.Date != "" {
		if _, err := time.Parse(models.DateFormat, input.Date); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
		}
		m.WithDate(input.Date)
	}

	if err := s.repo.AddBodyMetric(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add body metric: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("recorded %.1f on %s", m.Weight, m.Date)}, nil
}

// resolveExercise finds an exercise by exact name, then by unique fragment.
func (s *Server) resolveExercise(name string) (*models.Exercise, error) {
	if e, err := s.repo.GetExerciseByName(name); err == nil {
		return e, nil
	}

	matches, err := s.repo.SearchExercises(name)
	if err != nil {
		return nil, fmt.Errorf("failed to search exercises: %w", err)
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no exercise matches %q", name)
	}
	return nil, fmt.Errorf("%q matches %d exercises", name, len(matches))
}
