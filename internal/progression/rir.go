// ABOUTME: Default per-week RIR target schedule for mesocycles.
// ABOUTME: Three-week 3-2-1 accumulation cycle with a fixed final-week deload.
package progression

// DeloadRIR is the target for the final (deload) week of any programme.
const DeloadRIR = 4

// DefaultRIRTarget returns the default target RIR for a programme week.
// The final week is always a deload at RIR 4; earlier weeks cycle through a
// 3-2-1 pattern (week 1 -> 3, week 2 -> 2, week 3 -> 1, week 4 -> 3, ...).
// A programme may override any week via its RIRTargets map; this is only the
// fallback. Both arguments are 1-indexed; weeks past totalWeeks are clamped
// to the final week by TargetRIR.
func DefaultRIRTarget(weekNumber, totalWeeks int) int {
	if weekNumber == totalWeeks {
		return DeloadRIR
	}
	return 3 - (weekNumber-1)%3
}

// TargetRIR resolves the target for a week: programme override first, then
// the default schedule. Out-of-range weeks are clamped into the programme's
// duration rather than fed to the modular pattern.
func TargetRIR(overrides map[int]int, weekNumber, totalWeeks int) int {
	if weekNumber > totalWeeks {
		weekNumber = totalWeeks
	}
	if weekNumber < 1 {
		weekNumber = 1
	}
	if rir, ok := overrides[weekNumber]; ok {
		return rir
	}
	return DefaultRIRTarget(weekNumber, totalWeeks)
}
