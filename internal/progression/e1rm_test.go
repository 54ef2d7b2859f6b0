// ABOUTME: Tests for the Epley estimated one-rep max calculation.
// ABOUTME: Validates the formula, the single-rep identity, and degenerate inputs.
package progression

import "testing"

func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"ten reps", 100, 10, 133.3},
		{"five reps", 100, 5, 116.7},
		{"single rep returns weight", 142.5, 1, 142.5},
		{"thirty reps doubles", 60, 30, 120},
		{"zero weight", 0, 10, 0},
		{"zero reps", 100, 0, 0},
		{"negative weight", -80, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateOneRepMax(tt.weight, tt.reps)
			if got != tt.want {
				t.Errorf("EstimateOneRepMax(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}
