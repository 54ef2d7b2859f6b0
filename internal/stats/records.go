// ABOUTME: Personal record detection over a finished workout's sets.
// ABOUTME: Compares working sets against stored bests for weight and e1RM.
package stats

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/liftlab/meso/internal/models"
)

// RecordSource looks up the stored best value for an exercise and record type.
type RecordSource interface {
	BestRecordValue(exerciseID uuid.UUID, prType models.PRType) (float64, error)
}

// DetectPRs returns the new personal records set in a workout: for each
// exercise, the heaviest working set and the highest e1RM are compared
// against the stored bests. At most one record per exercise per type.
func DetectPRs(w *models.WorkoutLog, sets []*models.SetLog, source RecordSource) ([]*models.PersonalRecord, error) {
	type bests struct {
		weight float64
		e1rm   float64
	}
	byExercise := make(map[uuid.UUID]*bests)
	var order []uuid.UUID

	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		b, ok := byExercise[s.ExerciseID]
		if !ok {
			b = &bests{}
			byExercise[s.ExerciseID] = b
			order = append(order, s.ExerciseID)
		}
		if s.Weight > b.weight {
			b.weight = s.Weight
		}
		if s.E1RM != nil && *s.E1RM > b.e1rm {
			b.e1rm = *s.E1RM
		}
	}

	var records []*models.PersonalRecord
	for _, exID := range order {
		b := byExercise[exID]

		if b.weight > 0 {
			stored, err := source.BestRecordValue(exID, models.PRWeight)
			if err != nil {
				return nil, fmt.Errorf("detect PRs: %w", err)
			}
			if b.weight > stored {
				records = append(records, models.NewPersonalRecord(exID, models.PRWeight, b.weight, w.Date, w.ID))
			}
		}

		if b.e1rm > 0 {
			stored, err := source.BestRecordValue(exID, models.PRE1RM)
			if err != nil {
				return nil, fmt.Errorf("detect PRs: %w", err)
			}
			if b.e1rm > stored {
				records = append(records, models.NewPersonalRecord(exID, models.PRE1RM, b.e1rm, w.Date, w.ID))
			}
		}
	}

	return records, nil
}
