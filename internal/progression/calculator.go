package progression

import "math"

const (
	// DefaultSets is returned for muscle groups without landmarks.
	DefaultSets = 3
	// MinSets is the floor for every calculated set count.
	MinSets = 2

	// progressionWeeks is the fixed window over which volume ramps from MEV to MRV.
	progressionWeeks = 4
)

// CalculateSets returns the weekly set volume for a muscle group in the given
// (1-indexed) week of a mesocycle. Volume ramps linearly from MEV in week 1 to MRV
// in week 5 and is then adjusted by the first feedback record matching the group.
// The result stays within [MEV, MRV] and is never below MinSets.
func CalculateSets(mg MuscleGroup, week int, feedback []Feedback) int {
	lm, ok := landmarks[mg]
	if !ok {
		return DefaultSets
	}

	// past the window the base is MRV anyway, and huge weeks would overflow the conversion
	if week > progressionWeeks+1 {
		week = progressionWeeks + 1
	}

	step := float64(lm.MRV-lm.MEV) / progressionWeeks
	base := maxInt(lm.MEV, int(math.Round(float64(lm.MEV)+step*float64(week-1))))
	base = minInt(lm.MRV, base)

	if f, found := findFeedback(mg, feedback); found {
		switch f.Difficulty {
		case DifficultyEasy:
			base = minInt(lm.MRV, base+2)
		case DifficultyHard:
			base = maxInt(lm.MEV, base-1)
		case DifficultyTooHard:
			base = maxInt(lm.MEV, base-2)
		}

		if f.Soreness == SorenessSevere {
			base = maxInt(lm.MEV, base-1)
		}
	}

	return maxInt(MinSets, base)
}

// DistributeSets splits a muscle group's weekly volume evenly across the exercises
// that target it. Each exercise gets at least MinSets.
func DistributeSets(weeklyTotal, exerciseCount int) int {
	if exerciseCount < 1 {
		exerciseCount = 1
	}
	perExercise := int(math.Round(float64(weeklyTotal) / float64(exerciseCount)))
	return maxInt(MinSets, perExercise)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
