package mesocycles

import (
	"errors"
	"time"

	"github.com/2beens/mesotracker/internal/progression"
)

const (
	MinWeeks = 1
	MaxWeeks = 12

	maxNameLen    = 128
	maxDayNameLen = 64
)

var (
	ErrMesocycleNotFound = errors.New("mesocycle not found")
	ErrWeekNotFound      = errors.New("week not found")
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrSetNotFound       = errors.New("set not found")
	ErrMesocycleComplete = errors.New("mesocycle complete")
	ErrWeekExists        = errors.New("week already exists")
	ErrInvalidRequest    = errors.New("invalid request")
)

type Mesocycle struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Name          string    `json:"name"`
	NumberOfWeeks int       `json:"numberOfWeeks"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Week struct {
	ID          int    `json:"id"`
	MesocycleID int    `json:"mesocycleId"`
	WeekNumber  int    `json:"weekNumber"`
	Name        string `json:"name"`
}

type Workout struct {
	ID          int        `json:"id"`
	WeekID      int        `json:"weekId"`
	DayName     string     `json:"dayName"`
	IsCompleted bool       `json:"isCompleted"`
	WorkoutDate *time.Time `json:"workoutDate,omitempty"`
}

type Exercise struct {
	ID            int                     `json:"id"`
	WorkoutID     int                     `json:"workoutId"`
	Name          string                  `json:"name"`
	MuscleGroup   progression.MuscleGroup `json:"muscleGroup"`
	ExerciseOrder int                     `json:"exerciseOrder"`
}

type Set struct {
	ID          int     `json:"id"`
	ExerciseID  int     `json:"exerciseId"`
	SetNumber   int     `json:"setNumber"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	IsCompleted bool    `json:"isCompleted"`
}

type ExerciseDetails struct {
	Exercise
	Sets []Set `json:"sets"`
}

type WorkoutDetails struct {
	Workout
	Exercises []ExerciseDetails `json:"exercises"`
}

type WeekDetails struct {
	Week
	Workouts []WorkoutDetails       `json:"workouts"`
	Feedback []progression.Feedback `json:"feedback"`
}

type MesocycleDetails struct {
	Mesocycle
	Weeks []WeekDetails `json:"weeks"`
}

// LastWeek returns the week with the highest number, or nil when there are none.
func (md *MesocycleDetails) LastWeek() *WeekDetails {
	var last *WeekDetails
	for i := range md.Weeks {
		if last == nil || md.Weeks[i].WeekNumber > last.WeekNumber {
			last = &md.Weeks[i]
		}
	}
	return last
}

type DayTemplate struct {
	DayName   string   `json:"dayName"`
	Exercises []string `json:"exercises"`
}

type CreateMesocycleRequest struct {
	Name          string        `json:"name"`
	NumberOfWeeks int           `json:"numberOfWeeks"`
	Days          []DayTemplate `json:"days"`
}

// PlannedSet is a set to be inserted, with the weight and reps pre-filled.
type PlannedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type PlannedExercise struct {
	Name        string                  `json:"name"`
	MuscleGroup progression.MuscleGroup `json:"muscleGroup"`
	Order       int                     `json:"order"`
	Sets        []PlannedSet            `json:"sets"`
}

type PlannedWorkout struct {
	DayName   string            `json:"dayName"`
	Exercises []PlannedExercise `json:"exercises"`
}

// WeekPlan is a not yet persisted week.
type WeekPlan struct {
	WeekNumber int              `json:"weekNumber"`
	Name       string           `json:"name"`
	IsDeload   bool             `json:"isDeload"`
	Workouts   []PlannedWorkout `json:"workouts"`
}

// SetUpdate is the result of a set update, used for cache invalidation and metrics.
type SetUpdate struct {
	MesocycleID  int
	WasCompleted bool
}

type HeatmapDay struct {
	Date              time.Time `json:"date"`
	CompletedWorkouts int       `json:"completedWorkouts"`
}

type MuscleGroupVolume struct {
	MuscleGroup   progression.MuscleGroup      `json:"muscleGroup"`
	PlannedSets   int                          `json:"plannedSets"`
	CompletedSets int                          `json:"completedSets"`
	Landmarks     *progression.VolumeLandmarks `json:"landmarks,omitempty"`
}

type WeekVolume struct {
	WeekID     int                 `json:"weekId"`
	WeekNumber int                 `json:"weekNumber"`
	Groups     []MuscleGroupVolume `json:"groups"`
}

type VolumeReport struct {
	MesocycleID int          `json:"mesocycleId"`
	Weeks       []WeekVolume `json:"weeks"`
}
