package progression

import "strings"

type ClassificationRule struct {
	Keywords []string
	Group    MuscleGroup
}

// Classifier maps free-text exercise names to muscle groups.
// Rules are evaluated in order and the first rule with a keyword contained in the
// lower-cased name wins, so specific rules must precede generic ones.
type Classifier struct {
	Rules    []ClassificationRule
	Fallback MuscleGroup
}

var DefaultClassifier = &Classifier{
	Rules: []ClassificationRule{
		{Group: Calves, Keywords: []string{"calf", "calves"}},
		{Group: Hamstrings, Keywords: []string{"leg curl", "hamstring", "romanian", "rdl", "stiff leg", "good morning", "nordic"}},
		{Group: Glutes, Keywords: []string{"hip thrust", "glute", "abduct", "bridge"}},
		{Group: Quadriceps, Keywords: []string{"squat", "leg press", "leg extension", "lunge", "hack", "split squat", "step up", "quad"}},
		{Group: Triceps, Keywords: []string{"tricep", "pushdown", "push down", "skull", "close grip bench", "overhead extension", "dip"}},
		{Group: Shoulders, Keywords: []string{"shoulder", "lateral raise", "overhead press", "military", "arnold", "face pull", "rear delt", "delt", "upright row", "ohp"}},
		{Group: Chest, Keywords: []string{"bench", "chest", "pec", "fly", "flye", "push up", "push-up", "pushup", "press"}},
		{Group: Biceps, Keywords: []string{"bicep", "curl", "chin"}},
		{Group: Back, Keywords: []string{"row", "pull up", "pull-up", "pullup", "pulldown", "pull down", "lats", "deadlift", "shrug", "back"}},
	},
	Fallback: Other,
}

func (c *Classifier) Classify(exerciseName string) MuscleGroup {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	if name != "" {
		for _, rule := range c.Rules {
			for _, kw := range rule.Keywords {
				if strings.Contains(name, kw) {
					return rule.Group
				}
			}
		}
	}
	if c.Fallback == "" {
		return Other
	}
	return c.Fallback
}
