// ABOUTME: Derived statistics over the workout log store.
// ABOUTME: Pure aggregations; nothing here writes to storage.
package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// Totals summarizes workout counts for the dashboard.
type Totals struct {
	Workouts  int `json:"workouts"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
}

// WeekVolume is the total tonnage lifted in one calendar week.
type WeekVolume struct {
	WeekStart string  `json:"week_start"`
	Workouts  int     `json:"workouts"`
	Volume    float64 `json:"volume"`
}

// CurrentStreak counts consecutive training days ending today or yesterday.
// A rest day today does not break a streak that ran through yesterday; a gap
// of two or more days resets it to zero.
func CurrentStreak(logs []*models.WorkoutLog, today time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	dates := make(map[string]bool, len(logs))
	for _, w := range logs {
		dates[w.Date] = true
	}

	day := dayStart(today)
	check := day
	if !dates[check.Format(models.DateFormat)] {
		check = day.AddDate(0, 0, -1)
		if !dates[check.Format(models.DateFormat)] {
			return 0
		}
	}

	streak := 0
	for dates[check.Format(models.DateFormat)] {
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyVolume sums weight x reps over non-warmup sets, grouped by calendar
// week (Monday start), for the last weeks weeks ending at now. Weeks with no
// workouts appear with zero volume.
func WeeklyVolume(logs []*models.WorkoutLog, setsByLog map[uuid.UUID][]*models.SetLog, weeks int, now time.Time) []WeekVolume {
	if weeks <= 0 {
		return nil
	}

	current := weekStart(now)
	oldest := current.AddDate(0, 0, -7*(weeks-1))

	byWeek := make(map[string]*WeekVolume, weeks)
	result := make([]WeekVolume, weeks)
	for i := 0; i < weeks; i++ {
		start := oldest.AddDate(0, 0, 7*i)
		key := start.Format(models.DateFormat)
		result[i] = WeekVolume{WeekStart: key}
		byWeek[key] = &result[i]
	}

	for _, w := range logs {
		d, err := time.Parse(models.DateFormat, w.Date)
		if err != nil {
			continue
		}
		wv, ok := byWeek[weekStart(d).Format(models.DateFormat)]
		if !ok {
			continue
		}
		wv.Workouts++
		for _, s := range setsByLog[w.ID] {
			if s.IsWarmup {
				continue
			}
			wv.Volume += s.Weight * float64(s.Reps)
		}
	}

	return result
}

// WorkoutTotals counts all workouts plus those in the current week and month.
func WorkoutTotals(logs []*models.WorkoutLog, now time.Time) Totals {
	t := Totals{Workouts: len(logs)}
	week := weekStart(now).Format(models.DateFormat)
	month := now.Format("2006-01")

	for _, w := range logs {
		if w.Date >= week {
			t.ThisWeek++
		}
		if len(w.Date) >= 7 && w.Date[:7] == month {
			t.ThisMonth++
		}
	}
	return t
}

// MissedDays returns the number of days since the last workout, or -1 when
// nothing has ever been logged. Logs must be sorted most recent first.
func MissedDays(logs []*models.WorkoutLog, today time.Time) int {
	if len(logs) == 0 {
		return -1
	}
	last, err := time.Parse(models.DateFormat, logs[0].Date)
	if err != nil {
		return -1
	}
	days := int(dayStart(today).Sub(last).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// AverageRIR returns the mean effective RIR across non-warmup sets, or -1
// when no set carries an effort rating.
func AverageRIR(sets []*models.SetLog) float64 {
	sum, n := 0, 0
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		if rir := s.EffectiveRIR(); rir != nil {
			sum += *rir
			n++
		}
	}
	if n == 0 {
		return -1
	}
	return float64(sum) / float64(n)
}

// MostTrainedGroup returns the muscle group with the most non-warmup sets,
// or "" when nothing has been logged. Ties go to the group seen first in
// catalog order.
func MostTrainedGroup(sets []*models.SetLog, exercises map[uuid.UUID]*models.Exercise) models.MuscleGroup {
	counts := make(map[models.MuscleGroup]int)
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		e, ok := exercises[s.ExerciseID]
		if !ok {
			continue
		}
		for _, mg := range e.MuscleGroups {
			counts[mg]++
		}
	}

	var best models.MuscleGroup
	bestCount := 0
	for _, mg := range models.AllMuscleGroups {
		if counts[mg] > bestCount {
			best = mg
			bestCount = counts[mg]
		}
	}
	return best
}

// weekStart returns midnight on the Monday of d's week.
func weekStart(d time.Time) time.Time {
	d = dayStart(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// dayStart returns UTC midnight on t's calendar date, taking the date in
// t's own location. Workout dates are stored as local calendar days, so
// day arithmetic must not shift across the caller's midnight.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
