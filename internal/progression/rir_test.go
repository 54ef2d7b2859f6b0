// ABOUTME: Tests for the per-week RIR target schedule.
// ABOUTME: Validates the 3-2-1 cycle, the final-week deload, overrides, and clamping.
package progression

import "testing"

func TestDefaultRIRTargetCycle(t *testing.T) {
	// 7-week programme: 3-2-1 cycle restarts, final week deloads
	want := map[int]int{1: 3, 2: 2, 3: 1, 4: 3, 5: 2, 6: 1, 7: DeloadRIR}
	for week, target := range want {
		if got := DefaultRIRTarget(week, 7); got != target {
			t.Errorf("DefaultRIRTarget(%d, 7) = %d, want %d", week, got, target)
		}
	}
}

func TestDefaultRIRTargetShortProgramme(t *testing.T) {
	// A 1-week programme is all deload
	if got := DefaultRIRTarget(1, 1); got != DeloadRIR {
		t.Errorf("DefaultRIRTarget(1, 1) = %d, want %d", got, DeloadRIR)
	}
}

func TestTargetRIROverrides(t *testing.T) {
	overrides := map[int]int{2: 0}

	if got := TargetRIR(overrides, 2, 5); got != 0 {
		t.Errorf("expected override 0 for week 2, got %d", got)
	}
	if got := TargetRIR(overrides, 1, 5); got != 3 {
		t.Errorf("expected default 3 for week 1, got %d", got)
	}
}

func TestTargetRIRClampsWeek(t *testing.T) {
	// Weeks past the duration resolve to the final week
	if got := TargetRIR(nil, 9, 5); got != DeloadRIR {
		t.Errorf("expected deload for out-of-range week, got %d", got)
	}
	if got := TargetRIR(nil, 0, 5); got != 3 {
		t.Errorf("expected week 1 default for week 0, got %d", got)
	}
}
