package progression

// VolumeLandmarks are weekly set counts for a muscle group:
// MEV - minimum effective volume
// MAV - maximum adaptive volume (informational, the calculator does not use it)
// MRV - maximum recoverable volume
type VolumeLandmarks struct {
	MEV int `json:"mev"`
	MAV int `json:"mav"`
	MRV int `json:"mrv"`
}

var landmarks = map[MuscleGroup]VolumeLandmarks{
	Chest:      {MEV: 10, MAV: 16, MRV: 22},
	Back:       {MEV: 10, MAV: 18, MRV: 25},
	Shoulders:  {MEV: 8, MAV: 19, MRV: 26},
	Biceps:     {MEV: 8, MAV: 17, MRV: 26},
	Triceps:    {MEV: 6, MAV: 12, MRV: 18},
	Quadriceps: {MEV: 8, MAV: 15, MRV: 20},
	Hamstrings: {MEV: 6, MAV: 13, MRV: 20},
	Glutes:     {MEV: 0, MAV: 8, MRV: 16},
	Calves:     {MEV: 8, MAV: 14, MRV: 20},
}

func LandmarksFor(mg MuscleGroup) (VolumeLandmarks, bool) {
	lm, ok := landmarks[mg]
	return lm, ok
}

// AllLandmarks returns a copy of the landmarks table.
func AllLandmarks() map[MuscleGroup]VolumeLandmarks {
	all := make(map[MuscleGroup]VolumeLandmarks, len(landmarks))
	for mg, lm := range landmarks {
		all[mg] = lm
	}
	return all
}
