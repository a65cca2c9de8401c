package progression

import "math"

const DefaultDeloadFactor = 0.6

// DeloadPolicy reduces volume in the last week of a mesocycle.
type DeloadPolicy struct {
	Enabled bool
	Factor  float64
}

func DefaultDeloadPolicy() DeloadPolicy {
	return DeloadPolicy{
		Enabled: true,
		Factor:  DefaultDeloadFactor,
	}
}

func (p DeloadPolicy) IsDeloadWeek(week, totalWeeks int) bool {
	return p.Enabled && totalWeeks > 1 && week == totalWeeks
}

// Apply returns the deloaded set count for the last week and sets unchanged otherwise.
// A zero or out of range factor falls back to DefaultDeloadFactor.
func (p DeloadPolicy) Apply(sets, week, totalWeeks int) int {
	if !p.IsDeloadWeek(week, totalWeeks) {
		return sets
	}
	factor := p.Factor
	if factor <= 0 || factor > 1 {
		factor = DefaultDeloadFactor
	}
	return maxInt(MinSets, int(math.Round(float64(sets)*factor)))
}
