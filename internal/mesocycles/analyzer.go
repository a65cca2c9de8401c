package mesocycles

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesotracker/internal/progression"
	"github.com/2beens/mesotracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=mesocycles_test

const maxHeatmapDays = 366

type analyzerRepo interface {
	CompletedWorkoutsPerDay(ctx context.Context, userID int, from, to time.Time) ([]HeatmapDay, error)
	GetMesocycleDetails(ctx context.Context, userID, id int) (*MesocycleDetails, error)
}

type Analyzer struct {
	repo analyzerRepo
}

func NewAnalyzer(repo analyzerRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// CompletionHeatmap returns one entry per day in [from, to], with days without
// completed workouts included as zero.
func (a *Analyzer) CompletionHeatmap(ctx context.Context, userID int, from, to time.Time) (_ []HeatmapDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mesocycles.heatmap")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrInvalidRequest)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from after to", ErrInvalidRequest)
	}
	daysCount := int(to.Sub(from).Hours()/24) + 1
	if daysCount > maxHeatmapDays {
		return nil, fmt.Errorf("%w: range longer than %d days", ErrInvalidRequest, maxHeatmapDays)
	}

	completed, err := a.repo.CompletedWorkoutsPerDay(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	perDay := make(map[time.Time]int, len(completed))
	for _, d := range completed {
		perDay[truncateToDay(d.Date)] += d.CompletedWorkouts
	}

	heatmap := make([]HeatmapDay, 0, daysCount)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		heatmap = append(heatmap, HeatmapDay{
			Date:              day,
			CompletedWorkouts: perDay[day],
		})
	}

	return heatmap, nil
}

func (a *Analyzer) WeeklyVolume(ctx context.Context, userID, mesocycleID int) (_ *VolumeReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.mesocycles.volume")
	defer func() {
		tracing.EndSpanIgnoring(span, err, ErrMesocycleNotFound)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("mesocycle.id", mesocycleID))

	details, err := a.repo.GetMesocycleDetails(ctx, userID, mesocycleID)
	if err != nil {
		return nil, err
	}

	return VolumeFromDetails(details), nil
}

// VolumeFromDetails counts planned and completed sets per muscle group and week.
// Known groups come in table order; anything else follows.
func VolumeFromDetails(details *MesocycleDetails) *VolumeReport {
	report := &VolumeReport{
		MesocycleID: details.ID,
		Weeks:       make([]WeekVolume, 0, len(details.Weeks)),
	}

	for _, week := range details.Weeks {
		planned := map[progression.MuscleGroup]int{}
		completed := map[progression.MuscleGroup]int{}
		var unknown []progression.MuscleGroup
		for _, wo := range week.Workouts {
			for _, ex := range wo.Exercises {
				mg := ex.MuscleGroup
				if _, seen := planned[mg]; !seen && !mg.IsKnown() {
					unknown = append(unknown, mg)
				}
				planned[mg] += len(ex.Sets)
				for _, set := range ex.Sets {
					if set.IsCompleted {
						completed[mg]++
					}
				}
			}
		}

		wv := WeekVolume{
			WeekID:     week.ID,
			WeekNumber: week.WeekNumber,
			Groups:     []MuscleGroupVolume{},
		}
		order := append(append([]progression.MuscleGroup{}, progression.KnownMuscleGroups...), unknown...)
		for _, mg := range order {
			sets, ok := planned[mg]
			if !ok {
				continue
			}
			mgv := MuscleGroupVolume{
				MuscleGroup:   mg,
				PlannedSets:   sets,
				CompletedSets: completed[mg],
			}
			if lm, ok := progression.LandmarksFor(mg); ok {
				mgv.Landmarks = &lm
			}
			wv.Groups = append(wv.Groups, mgv)
		}

		report.Weeks = append(report.Weeks, wv)
	}

	return report
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
