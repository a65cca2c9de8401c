package progression

type ExercisePlan struct {
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Sets        int         `json:"sets"`
}

type Planner struct {
	Classifier *Classifier
	Deload     DeloadPolicy
}

func NewPlanner(deload DeloadPolicy) *Planner {
	return &Planner{
		Classifier: DefaultClassifier,
		Deload:     deload,
	}
}

// PlanWeek assigns a set count to every exercise of a training week.
// The weekly volume of each muscle group is split across the exercises targeting it.
// Output order equals input order.
func (p *Planner) PlanWeek(exercises []string, week, totalWeeks int, feedback []Feedback) []ExercisePlan {
	classifier := p.Classifier
	if classifier == nil {
		classifier = DefaultClassifier
	}

	groups := make([]MuscleGroup, len(exercises))
	perGroup := map[MuscleGroup]int{}
	for i, name := range exercises {
		groups[i] = classifier.Classify(name)
		perGroup[groups[i]]++
	}

	weekly := make(map[MuscleGroup]int, len(perGroup))
	for mg := range perGroup {
		total := CalculateSets(mg, week, feedback)
		weekly[mg] = p.Deload.Apply(total, week, totalWeeks)
	}

	plans := make([]ExercisePlan, 0, len(exercises))
	for i, name := range exercises {
		mg := groups[i]
		plans = append(plans, ExercisePlan{
			Name:        name,
			MuscleGroup: mg,
			Sets:        DistributeSets(weekly[mg], perGroup[mg]),
		})
	}

	return plans
}
