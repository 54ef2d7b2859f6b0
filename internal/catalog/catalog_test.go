// ABOUTME: Tests for the built-in exercise catalog.
// ABOUTME: Validates coverage, uniqueness, and well-formedness of every entry.
package catalog

import (
	"strings"
	"testing"

	"github.com/liftlab/meso/internal/models"
)

func TestDefaultCatalogWellFormed(t *testing.T) {
	exercises := Default()
	if len(exercises) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		if e.Name == "" {
			t.Error("exercise with empty name")
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			t.Errorf("duplicate exercise name: %s", e.Name)
		}
		seen[key] = true

		if e.IsCustom {
			t.Errorf("%s: built-ins must not be custom", e.Name)
		}
		if len(e.MuscleGroups) == 0 {
			t.Errorf("%s: no muscle groups", e.Name)
		}
		for _, mg := range e.MuscleGroups {
			if !models.IsValidMuscleGroup(string(mg)) {
				t.Errorf("%s: invalid muscle group %s", e.Name, mg)
			}
		}
		if !models.IsValidEquipment(string(e.Equipment)) {
			t.Errorf("%s: invalid equipment %s", e.Name, e.Equipment)
		}
	}
}

func TestDefaultCatalogCoversAllGroups(t *testing.T) {
	covered := make(map[models.MuscleGroup]bool)
	equipment := make(map[models.Equipment]bool)
	for _, e := range Default() {
		for _, mg := range e.MuscleGroups {
			covered[mg] = true
		}
		equipment[e.Equipment] = true
	}

	for _, mg := range models.AllMuscleGroups {
		if !covered[mg] {
			t.Errorf("no catalog exercise trains %s", mg)
		}
	}
	for _, eq := range models.AllEquipment {
		if !equipment[eq] {
			t.Errorf("no catalog exercise uses %s", eq)
		}
	}
}

func TestDefaultGeneratesFreshIDs(t *testing.T) {
	first := Default()
	second := Default()
	if first[0].ID == second[0].ID {
		t.Error("expected fresh IDs on each call")
	}
}
