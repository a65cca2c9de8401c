package progression

import "strings"

// MuscleGroup can be one of:
//   - chest, back, shoulders, biceps, triceps
//   - quadriceps, hamstrings, glutes, calves
//   - other (no volume landmarks, used when an exercise can't be classified)
type MuscleGroup string

const (
	Chest      MuscleGroup = "Chest"
	Back       MuscleGroup = "Back"
	Shoulders  MuscleGroup = "Shoulders"
	Biceps     MuscleGroup = "Biceps"
	Triceps    MuscleGroup = "Triceps"
	Quadriceps MuscleGroup = "Quadriceps"
	Hamstrings MuscleGroup = "Hamstrings"
	Glutes     MuscleGroup = "Glutes"
	Calves     MuscleGroup = "Calves"
	Other      MuscleGroup = "Other"
)

// KnownMuscleGroups lists the groups that have volume landmarks, in display order.
var KnownMuscleGroups = []MuscleGroup{
	Chest, Back, Shoulders, Biceps, Triceps, Quadriceps, Hamstrings, Glutes, Calves,
}

func (mg MuscleGroup) String() string {
	return string(mg)
}

// IsKnown reports whether the group has volume landmarks.
func (mg MuscleGroup) IsKnown() bool {
	_, ok := landmarks[mg]
	return ok
}

// ParseMuscleGroup matches a label case-insensitively against the known groups and Other.
// Unrecognized labels are returned as-is so the calculator can fall back to DefaultSets.
func ParseMuscleGroup(s string) MuscleGroup {
	s = strings.TrimSpace(s)
	for _, mg := range KnownMuscleGroups {
		if strings.EqualFold(s, string(mg)) {
			return mg
		}
	}
	if strings.EqualFold(s, string(Other)) {
		return Other
	}
	return MuscleGroup(s)
}
