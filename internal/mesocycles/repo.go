package mesocycles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesotracker/internal/progression"
	"github.com/2beens/mesotracker/internal/telemetry/tracing"
	"github.com/2beens/mesotracker/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateMesocycle stores the mesocycle together with its first week and makes it
// the only active mesocycle of the user.
func (r *Repo) CreateMesocycle(ctx context.Context, meso Mesocycle, firstWeek WeekPlan) (_ *MesocycleDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", meso.UserID))

	var details *MesocycleDetails
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`UPDATE mesocycles SET is_active = false WHERE user_id = $1;`,
			meso.UserID,
		); err != nil {
			return fmt.Errorf("deactivate mesocycles: %w", err)
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO mesocycles (user_id, name, number_of_weeks, is_active)
				VALUES ($1, $2, $3, true)
			RETURNING id, created_at;`,
			meso.UserID, meso.Name, meso.NumberOfWeeks,
		).Scan(&meso.ID, &meso.CreatedAt); err != nil {
			return fmt.Errorf("insert mesocycle: %w", err)
		}
		meso.IsActive = true

		week, err := insertWeek(ctx, tx, meso.ID, firstWeek)
		if err != nil {
			return err
		}

		details = &MesocycleDetails{
			Mesocycle: meso,
			Weeks:     []WeekDetails{*week},
		}
		return nil
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown user %d", ErrInvalidRequest, meso.UserID)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("mesocycle.id", details.ID))
	return details, nil
}

func (r *Repo) ListMesocycles(ctx context.Context, userID int) (_ []Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, number_of_weeks, is_active, created_at
			FROM mesocycles
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesocycles []Mesocycle
	for rows.Next() {
		var m Mesocycle
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.NumberOfWeeks, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		mesocycles = append(mesocycles, m)
	}

	return mesocycles, rows.Err()
}

func (r *Repo) GetMesocycle(ctx context.Context, userID, id int) (_ *Mesocycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.get")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", id))

	return getMesocycle(ctx, r.db, userID, id)
}

// GetMesocycleDetails loads the whole mesocycle tree, down to the sets and the week feedback.
func (r *Repo) GetMesocycleDetails(ctx context.Context, userID, id int) (_ *MesocycleDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.details")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", id))

	meso, err := getMesocycle(ctx, r.db, userID, id)
	if err != nil {
		return nil, err
	}

	weeks, err := r.listWeeks(ctx, id)
	if err != nil {
		return nil, err
	}
	workouts, err := r.listWorkouts(ctx, id)
	if err != nil {
		return nil, err
	}
	exercises, err := r.listExercises(ctx, id)
	if err != nil {
		return nil, err
	}
	sets, err := r.listSets(ctx, id)
	if err != nil {
		return nil, err
	}
	feedback, err := r.listMesocycleFeedback(ctx, id)
	if err != nil {
		return nil, err
	}

	setsByExercise := make(map[int][]Set)
	for _, s := range sets {
		setsByExercise[s.ExerciseID] = append(setsByExercise[s.ExerciseID], s)
	}

	exercisesByWorkout := make(map[int][]ExerciseDetails)
	for _, e := range exercises {
		sets := setsByExercise[e.ID]
		if sets == nil {
			sets = []Set{}
		}
		exercisesByWorkout[e.WorkoutID] = append(exercisesByWorkout[e.WorkoutID], ExerciseDetails{
			Exercise: e,
			Sets:     sets,
		})
	}

	workoutsByWeek := make(map[int][]WorkoutDetails)
	for _, wo := range workouts {
		exs := exercisesByWorkout[wo.ID]
		if exs == nil {
			exs = []ExerciseDetails{}
		}
		workoutsByWeek[wo.WeekID] = append(workoutsByWeek[wo.WeekID], WorkoutDetails{
			Workout:   wo,
			Exercises: exs,
		})
	}

	details := &MesocycleDetails{
		Mesocycle: *meso,
		Weeks:     make([]WeekDetails, 0, len(weeks)),
	}
	for _, w := range weeks {
		wos := workoutsByWeek[w.ID]
		if wos == nil {
			wos = []WorkoutDetails{}
		}
		fb := feedback[w.ID]
		if fb == nil {
			fb = []progression.Feedback{}
		}
		details.Weeks = append(details.Weeks, WeekDetails{
			Week:     w,
			Workouts: wos,
			Feedback: fb,
		})
	}

	return details, nil
}

func (r *Repo) ActivateMesocycle(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.activate")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", id))

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := getMesocycle(ctx, tx, userID, id); err != nil {
			return err
		}
		_, err := tx.Exec(
			ctx,
			`UPDATE mesocycles SET is_active = (id = $2) WHERE user_id = $1;`,
			userID, id,
		)
		return err
	})
}

func (r *Repo) DeleteMesocycle(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.delete")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM mesocycles WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMesocycleNotFound
	}
	return nil
}

// AddWeek stores a planned week. Returns ErrWeekExists if the week number is already taken.
func (r *Repo) AddWeek(ctx context.Context, mesocycleID int, plan WeekPlan) (_ *WeekDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.addweek")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrWeekExists)
	}()
	span.SetAttributes(attribute.Int("mesocycle.id", mesocycleID), attribute.Int("week.number", plan.WeekNumber))

	var week *WeekDetails
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		week, err = insertWeek(ctx, tx, mesocycleID, plan)
		return err
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrWeekExists
		}
		// mesocycle deleted while the week was being built
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrMesocycleNotFound
		}
		return nil, err
	}

	return week, nil
}

func (r *Repo) GetWeek(ctx context.Context, userID, weekID int) (_ *Week, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.getweek")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrWeekNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("week.id", weekID))

	var w Week
	err = r.db.QueryRow(
		ctx,
		`SELECT w.id, w.mesocycle_id, w.week_number, w.name
			FROM weeks w
			JOIN mesocycles m ON m.id = w.mesocycle_id
			WHERE w.id = $1 AND m.user_id = $2;`,
		weekID, userID,
	).Scan(&w.ID, &w.MesocycleID, &w.WeekNumber, &w.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// SaveFeedback stores the week feedback. A record for a muscle group that already
// has feedback in this week replaces the old one.
func (r *Repo) SaveFeedback(ctx context.Context, weekID int, feedback []progression.Feedback) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.savefeedback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID), attribute.Int("feedback.count", len(feedback)))

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, fb := range feedback {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO week_feedback (week_id, muscle_group, difficulty, soreness, performance)
					VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (week_id, muscle_group) DO UPDATE
					SET difficulty = EXCLUDED.difficulty,
						soreness = EXCLUDED.soreness,
						performance = EXCLUDED.performance,
						created_at = now();`,
				weekID, string(fb.MuscleGroup), string(fb.Difficulty), string(fb.Soreness), string(fb.Performance),
			); err != nil {
				return fmt.Errorf("insert feedback [%s]: %w", fb.MuscleGroup, err)
			}
		}
		return nil
	})
}

func (r *Repo) ListFeedback(ctx context.Context, weekID int) (_ []progression.Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.listfeedback")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekID))

	rows, err := r.db.Query(
		ctx,
		`SELECT week_id, muscle_group, difficulty, soreness, performance
			FROM week_feedback
			WHERE week_id = $1
			ORDER BY id;`,
		weekID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byWeek, err := rows2feedback(rows)
	if err != nil {
		return nil, err
	}

	feedback := byWeek[weekID]
	if feedback == nil {
		feedback = []progression.Feedback{}
	}
	return feedback, nil
}

// SetWorkoutCompleted marks the workout as (not) completed. A nil date keeps the stored one.
// Returns the id of the mesocycle the workout belongs to.
func (r *Repo) SetWorkoutCompleted(ctx context.Context, userID, workoutID int, completed bool, date *time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.workoutcompleted")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrWorkoutNotFound)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("workout.id", workoutID),
		attribute.Bool("completed", completed),
	)

	var mesocycleID int
	err = r.db.QueryRow(
		ctx,
		`UPDATE workouts wo
			SET is_completed = $1, workout_date = COALESCE($2, wo.workout_date)
			FROM weeks w, mesocycles m
			WHERE wo.id = $3 AND w.id = wo.week_id AND m.id = w.mesocycle_id AND m.user_id = $4
		RETURNING m.id;`,
		completed, date, workoutID, userID,
	).Scan(&mesocycleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrWorkoutNotFound
	}
	if err != nil {
		return 0, err
	}

	return mesocycleID, nil
}

func (r *Repo) UpdateSet(ctx context.Context, userID int, set Set) (_ *SetUpdate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.updateset")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrSetNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("set.id", set.ID))

	var res SetUpdate
	err = r.db.QueryRow(
		ctx,
		`UPDATE sets s
			SET weight = $1, reps = $2, is_completed = $3
			FROM sets prev
			JOIN exercises e ON e.id = prev.exercise_id
			JOIN workouts wo ON wo.id = e.workout_id
			JOIN weeks w ON w.id = wo.week_id
			JOIN mesocycles m ON m.id = w.mesocycle_id
			WHERE s.id = $4 AND prev.id = s.id AND m.user_id = $5
		RETURNING m.id, prev.is_completed;`,
		set.Weight, set.Reps, set.IsCompleted, set.ID, userID,
	).Scan(&res.MesocycleID, &res.WasCompleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// AddSet appends a set to the exercise, copying weight and reps of its last set.
func (r *Repo) AddSet(ctx context.Context, userID, exerciseID int) (_ *Set, mesocycleID int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.addset")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrExerciseNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("exercise.id", exerciseID))

	set := Set{ExerciseID: exerciseID}
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			`SELECT m.id
				FROM exercises e
				JOIN workouts wo ON wo.id = e.workout_id
				JOIN weeks w ON w.id = wo.week_id
				JOIN mesocycles m ON m.id = w.mesocycle_id
				WHERE e.id = $1 AND m.user_id = $2;`,
			exerciseID, userID,
		).Scan(&mesocycleID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrExerciseNotFound
		}
		if err != nil {
			return err
		}

		err = tx.QueryRow(
			ctx,
			`SELECT set_number, weight, reps FROM sets
				WHERE exercise_id = $1
				ORDER BY set_number DESC
				LIMIT 1;`,
			exerciseID,
		).Scan(&set.SetNumber, &set.Weight, &set.Reps)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		set.SetNumber++

		return tx.QueryRow(
			ctx,
			`INSERT INTO sets (exercise_id, set_number, weight, reps, is_completed)
				VALUES ($1, $2, $3, $4, false)
			RETURNING id;`,
			exerciseID, set.SetNumber, set.Weight, set.Reps,
		).Scan(&set.ID)
	})
	if err != nil {
		return nil, 0, err
	}

	return &set, mesocycleID, nil
}

func (r *Repo) DeleteSet(ctx context.Context, userID, setID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.deleteset")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrSetNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("set.id", setID))

	var mesocycleID int
	err = r.db.QueryRow(
		ctx,
		`DELETE FROM sets s
			USING exercises e, workouts wo, weeks w, mesocycles m
			WHERE s.id = $1
				AND e.id = s.exercise_id
				AND wo.id = e.workout_id
				AND w.id = wo.week_id
				AND m.id = w.mesocycle_id
				AND m.user_id = $2
		RETURNING m.id;`,
		setID, userID,
	).Scan(&mesocycleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrSetNotFound
	}
	if err != nil {
		return 0, err
	}

	return mesocycleID, nil
}

// CompletedWorkoutsPerDay counts the completed workouts of the user per workout date.
func (r *Repo) CompletedWorkoutsPerDay(ctx context.Context, userID int, from, to time.Time) (_ []HeatmapDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mesocycles.completedperday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT wo.workout_date, COUNT(*)
			FROM workouts wo
			JOIN weeks w ON w.id = wo.week_id
			JOIN mesocycles m ON m.id = w.mesocycle_id
			WHERE m.user_id = $1
				AND wo.is_completed
				AND wo.workout_date IS NOT NULL
				AND wo.workout_date BETWEEN $2 AND $3
			GROUP BY wo.workout_date
			ORDER BY wo.workout_date;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []HeatmapDay{}
	for rows.Next() {
		var d HeatmapDay
		if err := rows.Scan(&d.Date, &d.CompletedWorkouts); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getMesocycle(ctx context.Context, q querier, userID, id int) (*Mesocycle, error) {
	var m Mesocycle
	err := q.QueryRow(
		ctx,
		`SELECT id, user_id, name, number_of_weeks, is_active, created_at
			FROM mesocycles
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&m.ID, &m.UserID, &m.Name, &m.NumberOfWeeks, &m.IsActive, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMesocycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertWeek(ctx context.Context, tx pgx.Tx, mesocycleID int, plan WeekPlan) (*WeekDetails, error) {
	week := &WeekDetails{
		Week: Week{
			MesocycleID: mesocycleID,
			WeekNumber:  plan.WeekNumber,
			Name:        plan.Name,
		},
		Workouts: make([]WorkoutDetails, 0, len(plan.Workouts)),
		Feedback: []progression.Feedback{},
	}

	if err := tx.QueryRow(
		ctx,
		`INSERT INTO weeks (mesocycle_id, week_number, name) VALUES ($1, $2, $3) RETURNING id;`,
		mesocycleID, plan.WeekNumber, plan.Name,
	).Scan(&week.ID); err != nil {
		return nil, fmt.Errorf("insert week: %w", err)
	}

	for _, pw := range plan.Workouts {
		workout := WorkoutDetails{
			Workout: Workout{
				WeekID:  week.ID,
				DayName: pw.DayName,
			},
			Exercises: make([]ExerciseDetails, 0, len(pw.Exercises)),
		}
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workouts (week_id, day_name) VALUES ($1, $2) RETURNING id;`,
			week.ID, pw.DayName,
		).Scan(&workout.ID); err != nil {
			return nil, fmt.Errorf("insert workout: %w", err)
		}

		for _, pe := range pw.Exercises {
			exercise := ExerciseDetails{
				Exercise: Exercise{
					WorkoutID:     workout.ID,
					Name:          pe.Name,
					MuscleGroup:   pe.MuscleGroup,
					ExerciseOrder: pe.Order,
				},
				Sets: make([]Set, 0, len(pe.Sets)),
			}
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO exercises (workout_id, name, muscle_group, exercise_order)
					VALUES ($1, $2, $3, $4)
				RETURNING id;`,
				workout.ID, pe.Name, string(pe.MuscleGroup), pe.Order,
			).Scan(&exercise.ID); err != nil {
				return nil, fmt.Errorf("insert exercise: %w", err)
			}

			for i, ps := range pe.Sets {
				set := Set{
					ExerciseID: exercise.ID,
					SetNumber:  i + 1,
					Weight:     ps.Weight,
					Reps:       ps.Reps,
				}
				if err := tx.QueryRow(
					ctx,
					`INSERT INTO sets (exercise_id, set_number, weight, reps)
						VALUES ($1, $2, $3, $4)
					RETURNING id;`,
					exercise.ID, set.SetNumber, set.Weight, set.Reps,
				).Scan(&set.ID); err != nil {
					return nil, fmt.Errorf("insert set: %w", err)
				}
				exercise.Sets = append(exercise.Sets, set)
			}

			workout.Exercises = append(workout.Exercises, exercise)
		}

		week.Workouts = append(week.Workouts, workout)
	}

	return week, nil
}

func (r *Repo) listWeeks(ctx context.Context, mesocycleID int) ([]Week, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, mesocycle_id, week_number, name
			FROM weeks
			WHERE mesocycle_id = $1
			ORDER BY week_number;`,
		mesocycleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []Week
	for rows.Next() {
		var w Week
		if err := rows.Scan(&w.ID, &w.MesocycleID, &w.WeekNumber, &w.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func (r *Repo) listWorkouts(ctx context.Context, mesocycleID int) ([]Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT wo.id, wo.week_id, wo.day_name, wo.is_completed, wo.workout_date
			FROM workouts wo
			JOIN weeks w ON w.id = wo.week_id
			WHERE w.mesocycle_id = $1
			ORDER BY wo.id;`,
		mesocycleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var wo Workout
		if err := rows.Scan(&wo.ID, &wo.WeekID, &wo.DayName, &wo.IsCompleted, &wo.WorkoutDate); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, wo)
	}
	return workouts, rows.Err()
}

func (r *Repo) listExercises(ctx context.Context, mesocycleID int) ([]Exercise, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.workout_id, e.name, e.muscle_group, e.exercise_order
			FROM exercises e
			JOIN workouts wo ON wo.id = e.workout_id
			JOIN weeks w ON w.id = wo.week_id
			WHERE w.mesocycle_id = $1
			ORDER BY e.workout_id, e.exercise_order, e.id;`,
		mesocycleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var (
			e           Exercise
			muscleGroup string
		)
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &muscleGroup, &e.ExerciseOrder); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		e.MuscleGroup = progression.MuscleGroup(muscleGroup)
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (r *Repo) listSets(ctx context.Context, mesocycleID int) ([]Set, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.exercise_id, s.set_number, s.weight, s.reps, s.is_completed
			FROM sets s
			JOIN exercises e ON e.id = s.exercise_id
			JOIN workouts wo ON wo.id = e.workout_id
			JOIN weeks w ON w.id = wo.week_id
			WHERE w.mesocycle_id = $1
			ORDER BY s.exercise_id, s.set_number, s.id;`,
		mesocycleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []Set
	for rows.Next() {
		var s Set
		if err := rows.Scan(&s.ID, &s.ExerciseID, &s.SetNumber, &s.Weight, &s.Reps, &s.IsCompleted); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

func (r *Repo) listMesocycleFeedback(ctx context.Context, mesocycleID int) (map[int][]progression.Feedback, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT f.week_id, f.muscle_group, f.difficulty, f.soreness, f.performance
			FROM week_feedback f
			JOIN weeks w ON w.id = f.week_id
			WHERE w.mesocycle_id = $1
			ORDER BY f.id;`,
		mesocycleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2feedback(rows)
}

func rows2feedback(rows pgx.Rows) (map[int][]progression.Feedback, error) {
	byWeek := make(map[int][]progression.Feedback)
	for rows.Next() {
		var (
			weekID                                         int
			muscleGroup, difficulty, soreness, performance string
		)
		if err := rows.Scan(&weekID, &muscleGroup, &difficulty, &soreness, &performance); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		byWeek[weekID] = append(byWeek[weekID], progression.Feedback{
			MuscleGroup: progression.MuscleGroup(muscleGroup),
			Difficulty:  progression.Difficulty(difficulty),
			Soreness:    progression.Soreness(soreness),
			Performance: progression.Performance(performance),
		})
	}
	return byWeek, rows.Err()
}
