package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/2beens/mesotracker/internal/progression"
)

// mockSchemaRepo implements SchemaRepo for service tests.
type mockSchemaRepo struct {
	cols []SchemaColumn
	err  error
}

func (m *mockSchemaRepo) GetColumns(ctx context.Context) ([]SchemaColumn, error) {
	return m.cols, m.err
}

func TestContextService_GetSchema(t *testing.T) {
	t.Run("formats_tables", func(t *testing.T) {
		def := "nextval('sets_id_seq'::regclass)"
		svc := NewContextService(&mockSchemaRepo{cols: []SchemaColumn{
			{TableSchema: "public", TableName: "sets", ColumnName: "id", DataType: "integer", IsNullable: "NO", ColumnDef: &def},
			{TableSchema: "public", TableName: "sets", ColumnName: "weight", DataType: "double precision", IsNullable: "NO"},
			{TableSchema: "public", TableName: "mesocycles", ColumnName: "name", DataType: "character varying", IsNullable: "NO"},
		}}, nil)

		text, err := svc.GetSchema(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(text, "# Mesotracker DB Schema") {
			t.Fatalf("missing header: %q", text)
		}
		if strings.Index(text, "## mesocycles") > strings.Index(text, "## sets") {
			t.Fatalf("tables not sorted: %q", text)
		}
		if !strings.Contains(text, "| id | integer | NO | "+def+" |") {
			t.Fatalf("missing id column: %q", text)
		}
		if !strings.Contains(text, "| weight | double precision | NO | - |") {
			t.Fatalf("missing weight column: %q", text)
		}
	})

	t.Run("no_tables", func(t *testing.T) {
		svc := NewContextService(&mockSchemaRepo{}, nil)
		text, err := svc.GetSchema(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(text, "No mesotracker tables found") {
			t.Fatalf("content text = %q", text)
		}
	})

	t.Run("repo_error", func(t *testing.T) {
		svc := NewContextService(&mockSchemaRepo{err: errors.New("db gone")}, nil)
		if _, err := svc.GetSchema(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no_repo", func(t *testing.T) {
		svc := NewContextService(nil, nil)
		if _, err := svc.GetSchema(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestContextService_CalculateSets(t *testing.T) {
	svc := NewContextService(nil, nil)

	sets, err := svc.CalculateSets("quadriceps", 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sets != 8 {
		t.Fatalf("sets = %d, want 8", sets)
	}

	if _, err := svc.CalculateSets("chest", 0, nil); err == nil {
		t.Fatalf("expected error for week 0")
	}

	_, err = svc.CalculateSets("chest", 2, []progression.Feedback{{MuscleGroup: progression.Chest, Difficulty: "nope"}})
	if !errors.Is(err, progression.ErrInvalidFeedback) {
		t.Fatalf("err = %v, want ErrInvalidFeedback", err)
	}
}

func TestContextService_PlanWeek(t *testing.T) {
	svc := NewContextService(nil, progression.NewPlanner(progression.DeloadPolicy{}))

	plan, err := svc.PlanWeek([]string{"Squat", "Leg Press", "Standing Calf Raise"}, 1, 4, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("plan len = %d, want 3", len(plan))
	}
	if plan[0].MuscleGroup != progression.Quadriceps || plan[0].Sets != 4 {
		t.Fatalf("unexpected squat plan: %+v", plan[0])
	}
	if plan[2].MuscleGroup != progression.Calves || plan[2].Sets != 8 {
		t.Fatalf("unexpected calf plan: %+v", plan[2])
	}

	if _, err := svc.PlanWeek(nil, 1, 4, nil); err == nil {
		t.Fatalf("expected error for empty exercises")
	}

	if got := svc.Classify("Hip Thrust"); got != progression.Glutes {
		t.Fatalf("classify = %s, want Glutes", got)
	}
}

func TestNewServer(t *testing.T) {
	if s := NewServer(&mockSchemaRepo{}, nil); s == nil {
		t.Fatalf("expected server")
	}
}
