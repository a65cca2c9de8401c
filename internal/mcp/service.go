package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/mesotracker/internal/progression"
)

// contextService is what the tool handlers need. Split out for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	Landmarks() map[progression.MuscleGroup]progression.VolumeLandmarks
	CalculateSets(muscleGroup string, week int, feedback []progression.Feedback) (int, error)
	Classify(name string) progression.MuscleGroup
	PlanWeek(exercises []string, week, totalWeeks int, feedback []progression.Feedback) ([]progression.ExercisePlan, error)
}

// ContextService wires the schema repo and the progression planner.
type ContextService struct {
	schema  SchemaRepo
	planner *progression.Planner
}

func NewContextService(schemaRepo SchemaRepo, planner *progression.Planner) *ContextService {
	if planner == nil {
		planner = progression.NewPlanner(progression.DefaultDeloadPolicy())
	}
	return &ContextService{
		schema:  schemaRepo,
		planner: planner,
	}
}

// GetSchema returns the mesotracker tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	if s.schema == nil {
		return "", fmt.Errorf("no database configured")
	}
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func (s *ContextService) Landmarks() map[progression.MuscleGroup]progression.VolumeLandmarks {
	return progression.AllLandmarks()
}

func (s *ContextService) CalculateSets(muscleGroup string, week int, feedback []progression.Feedback) (int, error) {
	if week < 1 {
		return 0, fmt.Errorf("week must be 1 or greater, got %d", week)
	}
	if err := progression.ValidateFeedback(feedback); err != nil {
		return 0, err
	}
	return progression.CalculateSets(progression.ParseMuscleGroup(muscleGroup), week, feedback), nil
}

func (s *ContextService) Classify(name string) progression.MuscleGroup {
	if s.planner.Classifier == nil {
		return progression.DefaultClassifier.Classify(name)
	}
	return s.planner.Classifier.Classify(name)
}

func (s *ContextService) PlanWeek(exercises []string, week, totalWeeks int, feedback []progression.Feedback) ([]progression.ExercisePlan, error) {
	if len(exercises) == 0 {
		return nil, fmt.Errorf("no exercises given")
	}
	if week < 1 {
		return nil, fmt.Errorf("week must be 1 or greater, got %d", week)
	}
	if err := progression.ValidateFeedback(feedback); err != nil {
		return nil, err
	}
	return s.planner.PlanWeek(exercises, week, totalWeeks, feedback), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Mesotracker DB Schema\n\nNo mesotracker tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Mesotracker DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(mesotrackerTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
