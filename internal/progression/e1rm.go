// ABOUTME: Estimated one-rep max calculation via the Epley formula.
// ABOUTME: Shared by set logging (denormalized e1RM) and the progression engine.
package progression

import "math"

// EstimateOneRepMax projects a maximal single-rep weight from a higher-rep
// set using the Epley formula: weight * (1 + reps/30), rounded to one
// decimal. A true single returns the weight unchanged; non-positive inputs
// return 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return round1(weight * (1 + float64(reps)/30))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
