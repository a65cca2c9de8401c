package mesocycles

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesotracker/internal/progression"
	"github.com/2beens/mesotracker/internal/telemetry/metrics"
	"github.com/2beens/mesotracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=repo_mocks_test.go -package=mesocycles_test

type mesocyclesRepo interface {
	CreateMesocycle(ctx context.Context, meso Mesocycle, firstWeek WeekPlan) (*MesocycleDetails, error)
	ListMesocycles(ctx context.Context, userID int) ([]Mesocycle, error)
	GetMesocycleDetails(ctx context.Context, userID, id int) (*MesocycleDetails, error)
	ActivateMesocycle(ctx context.Context, userID, id int) error
	DeleteMesocycle(ctx context.Context, userID, id int) error
	AddWeek(ctx context.Context, mesocycleID int, plan WeekPlan) (*WeekDetails, error)
	GetWeek(ctx context.Context, userID, weekID int) (*Week, error)
	SaveFeedback(ctx context.Context, weekID int, feedback []progression.Feedback) error
	ListFeedback(ctx context.Context, weekID int) ([]progression.Feedback, error)
	SetWorkoutCompleted(ctx context.Context, userID, workoutID int, completed bool, date *time.Time) (int, error)
	UpdateSet(ctx context.Context, userID int, set Set) (*SetUpdate, error)
	AddSet(ctx context.Context, userID, exerciseID int) (*Set, int, error)
	DeleteSet(ctx context.Context, userID, setID int) (int, error)
}

type Service struct {
	repo           mesocyclesRepo
	planner        *progression.Planner
	cache          *DetailsCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo mesocyclesRepo,
	planner *progression.Planner,
	cache *DetailsCache,
	metricsManager *metrics.Manager,
) *Service {
	if planner == nil {
		planner = progression.NewPlanner(progression.DefaultDeloadPolicy())
	}
	return &Service{
		repo:           repo,
		planner:        planner,
		cache:          cache,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Validate checks the request and trims names in place.
func (req *CreateMesocycleRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidRequest)
	}
	if len(req.Name) > maxNameLen {
		return fmt.Errorf("%w: name too long", ErrInvalidRequest)
	}
	if req.NumberOfWeeks < MinWeeks || req.NumberOfWeeks > MaxWeeks {
		return fmt.Errorf("%w: number of weeks must be between %d and %d", ErrInvalidRequest, MinWeeks, MaxWeeks)
	}
	if len(req.Days) == 0 {
		return fmt.Errorf("%w: at least one day required", ErrInvalidRequest)
	}
	for i := range req.Days {
		day := &req.Days[i]
		day.DayName = strings.TrimSpace(day.DayName)
		if day.DayName == "" {
			return fmt.Errorf("%w: day %d name empty", ErrInvalidRequest, i+1)
		}
		if len(day.DayName) > maxDayNameLen {
			return fmt.Errorf("%w: day %d name too long", ErrInvalidRequest, i+1)
		}
		if len(day.Exercises) == 0 {
			return fmt.Errorf("%w: day [%s] has no exercises", ErrInvalidRequest, day.DayName)
		}
		for j := range day.Exercises {
			day.Exercises[j] = strings.TrimSpace(day.Exercises[j])
			if day.Exercises[j] == "" {
				return fmt.Errorf("%w: day [%s] exercise %d name empty", ErrInvalidRequest, day.DayName, j+1)
			}
			if len(day.Exercises[j]) > maxNameLen {
				return fmt.Errorf("%w: day [%s] exercise %d name too long", ErrInvalidRequest, day.DayName, j+1)
			}
		}
	}
	return nil
}

func (s *Service) CreateMesocycle(ctx context.Context, userID int, req CreateMesocycleRequest) (_ *MesocycleDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycles.create")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrInvalidRequest)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := req.Validate(); err != nil {
		return nil, err
	}

	firstWeek := s.planWeek(req.Days, 1, req.NumberOfWeeks, nil, nil)
	meso := Mesocycle{
		UserID:        userID,
		Name:          req.Name,
		NumberOfWeeks: req.NumberOfWeeks,
	}

	details, err := s.repo.CreateMesocycle(ctx, meso, firstWeek)
	if err != nil {
		return nil, fmt.Errorf("create mesocycle: %w", err)
	}
	// the previously active mesocycle got deactivated
	s.invalidateAll(ctx, userID)

	if s.metricsManager != nil {
		s.metricsManager.CounterMesocyclesCreated.Inc()
	}
	log.Debugf("mesocycle [%s] created for user %d: %d", details.Name, userID, details.ID)

	return details, nil
}

func (s *Service) ListMesocycles(ctx context.Context, userID int) ([]Mesocycle, error) {
	mesocycles, err := s.repo.ListMesocycles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if mesocycles == nil {
		mesocycles = []Mesocycle{}
	}
	return mesocycles, nil
}

// GetMesocycle returns the nested mesocycle, from cache when possible.
func (s *Service) GetMesocycle(ctx context.Context, userID, id int) (*MesocycleDetails, error) {
	if details, ok := s.cache.Get(userID, id); ok {
		log.Tracef("mesocycle %d found in cache", id)
		return details, nil
	}

	details, err := s.repo.GetMesocycleDetails(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userID, details)
	return details, nil
}

func (s *Service) ActivateMesocycle(ctx context.Context, userID, id int) error {
	if err := s.repo.ActivateMesocycle(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateAll(ctx, userID)
	return nil
}

func (s *Service) DeleteMesocycle(ctx context.Context, userID, id int) error {
	if err := s.repo.DeleteMesocycle(ctx, userID, id); err != nil {
		return err
	}
	s.cache.Invalidate(userID, id)
	return nil
}

// PreviewWeek computes the next week of the mesocycle without storing it.
func (s *Service) PreviewWeek(ctx context.Context, userID, mesocycleID int) (_ *WeekPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycles.preview")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound, ErrMesocycleComplete)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", mesocycleID))

	details, err := s.repo.GetMesocycleDetails(ctx, userID, mesocycleID)
	if err != nil {
		return nil, err
	}

	return s.NextWeekPlan(details)
}

// ProgressWeek plans and stores week N+1 based on week N and its feedback.
func (s *Service) ProgressWeek(ctx context.Context, userID, mesocycleID int) (_ *WeekDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycles.progress")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound, ErrMesocycleComplete, ErrWeekExists)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", mesocycleID))

	details, err := s.repo.GetMesocycleDetails(ctx, userID, mesocycleID)
	if err != nil {
		return nil, err
	}

	plan, err := s.NextWeekPlan(details)
	if err != nil {
		return nil, err
	}

	week, err := s.repo.AddWeek(ctx, mesocycleID, *plan)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID, mesocycleID)

	if s.metricsManager != nil {
		s.metricsManager.CounterWeeksProgressed.Inc()
	}
	log.Debugf("mesocycle %d progressed to week %d", mesocycleID, week.WeekNumber)

	return week, nil
}

// NextWeekPlan builds the plan for the week after the latest one. The day and exercise
// layout is copied, set counts come from the planner using the latest week's feedback,
// and every set starts from the weight and reps last logged for that exercise.
func (s *Service) NextWeekPlan(details *MesocycleDetails) (*WeekPlan, error) {
	last := details.LastWeek()
	if last == nil {
		return nil, fmt.Errorf("%w: mesocycle %d has no weeks", ErrInvalidRequest, details.ID)
	}
	if last.WeekNumber >= details.NumberOfWeeks {
		return nil, ErrMesocycleComplete
	}

	days := make([]DayTemplate, 0, len(last.Workouts))
	carry := make(map[slot]PlannedSet)
	for di, wo := range last.Workouts {
		day := DayTemplate{
			DayName:   wo.DayName,
			Exercises: make([]string, 0, len(wo.Exercises)),
		}
		for ei, ex := range wo.Exercises {
			day.Exercises = append(day.Exercises, ex.Name)
			if set, ok := lastLoggedSet(ex.Sets); ok {
				carry[slot{day: di, exercise: ei}] = PlannedSet{Weight: set.Weight, Reps: set.Reps}
			}
		}
		days = append(days, day)
	}

	plan := s.planWeek(days, last.WeekNumber+1, details.NumberOfWeeks, last.Feedback, carry)
	return &plan, nil
}

type slot struct {
	day      int
	exercise int
}

func (s *Service) planWeek(
	days []DayTemplate,
	weekNumber, totalWeeks int,
	feedback []progression.Feedback,
	carry map[slot]PlannedSet,
) WeekPlan {
	var names []string
	for _, d := range days {
		names = append(names, d.Exercises...)
	}
	exercisePlans := s.planner.PlanWeek(names, weekNumber, totalWeeks, feedback)

	plan := WeekPlan{
		WeekNumber: weekNumber,
		Name:       fmt.Sprintf("Week %d", weekNumber),
		IsDeload:   s.planner.Deload.IsDeloadWeek(weekNumber, totalWeeks),
		Workouts:   make([]PlannedWorkout, 0, len(days)),
	}
	if plan.IsDeload {
		plan.Name += " (Deload)"
	}

	i := 0
	for di, d := range days {
		workout := PlannedWorkout{
			DayName:   d.DayName,
			Exercises: make([]PlannedExercise, 0, len(d.Exercises)),
		}
		for ei := range d.Exercises {
			ep := exercisePlans[i]
			i++

			sets := make([]PlannedSet, ep.Sets)
			if prev, ok := carry[slot{day: di, exercise: ei}]; ok {
				for k := range sets {
					sets[k] = prev
				}
			}

			workout.Exercises = append(workout.Exercises, PlannedExercise{
				Name:        ep.Name,
				MuscleGroup: ep.MuscleGroup,
				Order:       ei + 1,
				Sets:        sets,
			})
		}
		plan.Workouts = append(plan.Workouts, workout)
	}

	return plan
}

// lastLoggedSet prefers the last completed set and falls back to the last set.
func lastLoggedSet(sets []Set) (Set, bool) {
	if len(sets) == 0 {
		return Set{}, false
	}
	var (
		last      Set
		completed bool
	)
	for _, set := range sets {
		if set.IsCompleted && (!completed || set.SetNumber >= last.SetNumber) {
			last = set
			completed = true
		}
	}
	if completed {
		return last, true
	}
	last = sets[0]
	for _, set := range sets[1:] {
		if set.SetNumber >= last.SetNumber {
			last = set
		}
	}
	return last, true
}

func (s *Service) AddFeedback(ctx context.Context, userID, weekID int, feedback []progression.Feedback) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.mesocycles.addfeedback")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrInvalidRequest, ErrWeekNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("week.id", weekID))

	if len(feedback) == 0 {
		return fmt.Errorf("%w: feedback empty", ErrInvalidRequest)
	}
	if err := progression.ValidateFeedback(feedback); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	week, err := s.repo.GetWeek(ctx, userID, weekID)
	if err != nil {
		return err
	}

	if err := s.repo.SaveFeedback(ctx, weekID, feedback); err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}
	s.cache.Invalidate(userID, week.MesocycleID)

	if s.metricsManager != nil {
		for _, fb := range feedback {
			s.metricsManager.CounterFeedback.WithLabelValues(string(fb.MuscleGroup), string(fb.Difficulty)).Inc()
		}
	}

	return nil
}

func (s *Service) ListFeedback(ctx context.Context, userID, weekID int) ([]progression.Feedback, error) {
	if _, err := s.repo.GetWeek(ctx, userID, weekID); err != nil {
		return nil, err
	}
	return s.repo.ListFeedback(ctx, weekID)
}

// SetWorkoutCompleted marks a workout as done. Completing without a date uses today.
func (s *Service) SetWorkoutCompleted(ctx context.Context, userID, workoutID int, completed bool, date *time.Time) error {
	if completed && date == nil {
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		date = &today
	}

	mesocycleID, err := s.repo.SetWorkoutCompleted(ctx, userID, workoutID, completed, date)
	if err != nil {
		return err
	}
	s.cache.Invalidate(userID, mesocycleID)

	return nil
}

func (s *Service) UpdateSet(ctx context.Context, userID int, set Set) error {
	if set.Weight < 0 {
		return fmt.Errorf("%w: weight negative", ErrInvalidRequest)
	}
	if set.Reps < 0 {
		return fmt.Errorf("%w: reps negative", ErrInvalidRequest)
	}

	res, err := s.repo.UpdateSet(ctx, userID, set)
	if err != nil {
		return err
	}
	s.cache.Invalidate(userID, res.MesocycleID)

	if set.IsCompleted && !res.WasCompleted && s.metricsManager != nil {
		s.metricsManager.CounterSetsCompleted.Inc()
	}

	return nil
}

func (s *Service) AddSet(ctx context.Context, userID, exerciseID int) (*Set, error) {
	set, mesocycleID, err := s.repo.AddSet(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID, mesocycleID)
	return set, nil
}

func (s *Service) DeleteSet(ctx context.Context, userID, setID int) error {
	mesocycleID, err := s.repo.DeleteSet(ctx, userID, setID)
	if err != nil {
		return err
	}
	s.cache.Invalidate(userID, mesocycleID)
	return nil
}

// invalidateAll drops the cached mesocycles of the user; used when the active flag moves.
func (s *Service) invalidateAll(ctx context.Context, userID int) {
	if s.cache == nil {
		return
	}
	mesocycles, err := s.repo.ListMesocycles(ctx, userID)
	if err != nil {
		log.Errorf("invalidate mesocycles cache for user %d: %s", userID, err)
		return
	}
	for _, m := range mesocycles {
		s.cache.Invalidate(userID, m.ID)
	}
}
