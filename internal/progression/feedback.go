package progression

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFeedback   = errors.New("invalid feedback")
	ErrDuplicateFeedback = errors.New("duplicate feedback for muscle group")
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyTooHard  Difficulty = "too_hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy,
		DifficultyModerate,
		DifficultyHard,
		DifficultyTooHard:
		return true
	default:
		return false
	}
}

type Soreness string

const (
	SorenessNone     Soreness = "none"
	SorenessLight    Soreness = "light"
	SorenessModerate Soreness = "moderate"
	SorenessSevere   Soreness = "severe"
)

func (s Soreness) IsValid() bool {
	switch s {
	case SorenessNone,
		SorenessLight,
		SorenessModerate,
		SorenessSevere:
		return true
	default:
		return false
	}
}

type Performance string

const (
	PerformanceImproved   Performance = "improved"
	PerformanceMaintained Performance = "maintained"
	PerformanceDecreased  Performance = "decreased"
)

func (p Performance) IsValid() bool {
	switch p {
	case PerformanceImproved,
		PerformanceMaintained,
		PerformanceDecreased:
		return true
	default:
		return false
	}
}

// Feedback is the self-reported outcome of a training week for one muscle group.
type Feedback struct {
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Difficulty  Difficulty  `json:"difficulty"`
	Soreness    Soreness    `json:"soreness"`
	Performance Performance `json:"performance"`
}

func (f Feedback) Validate() error {
	if !f.MuscleGroup.IsKnown() {
		return fmt.Errorf("%w: unknown muscle group [%s]", ErrInvalidFeedback, f.MuscleGroup)
	}
	if !f.Difficulty.IsValid() {
		return fmt.Errorf("%w: difficulty [%s]", ErrInvalidFeedback, f.Difficulty)
	}
	if !f.Soreness.IsValid() {
		return fmt.Errorf("%w: soreness [%s]", ErrInvalidFeedback, f.Soreness)
	}
	if !f.Performance.IsValid() {
		return fmt.Errorf("%w: performance [%s]", ErrInvalidFeedback, f.Performance)
	}
	return nil
}

// ValidateFeedback rejects invalid records and more than one record per muscle group.
// CalculateSets itself never fails and only consults the first match.
func ValidateFeedback(feedback []Feedback) error {
	seen := make(map[MuscleGroup]bool, len(feedback))
	for _, f := range feedback {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.MuscleGroup] {
			return fmt.Errorf("%w: %s", ErrDuplicateFeedback, f.MuscleGroup)
		}
		seen[f.MuscleGroup] = true
	}
	return nil
}

func findFeedback(mg MuscleGroup, feedback []Feedback) (Feedback, bool) {
	for _, f := range feedback {
		if f.MuscleGroup == mg {
			return f, true
		}
	}
	return Feedback{}, false
}
