package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/mesotracker/internal/progression"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// FeedbackInput is one week feedback record for a muscle group.
type FeedbackInput struct {
	MuscleGroup string `json:"muscle_group" jsonschema:"Muscle group (e.g. Chest, Back, Quadriceps)"`
	Difficulty  string `json:"difficulty" jsonschema:"One of: easy, moderate, hard, too_hard"`
	Soreness    string `json:"soreness" jsonschema:"One of: none, light, moderate, severe"`
	Performance string `json:"performance" jsonschema:"One of: improved, maintained, decreased"`
}

func toFeedback(in []FeedbackInput) []progression.Feedback {
	feedback := make([]progression.Feedback, 0, len(in))
	for _, f := range in {
		feedback = append(feedback, progression.Feedback{
			MuscleGroup: progression.ParseMuscleGroup(f.MuscleGroup),
			Difficulty:  progression.Difficulty(f.Difficulty),
			Soreness:    progression.Soreness(f.Soreness),
			Performance: progression.Performance(f.Performance),
		})
	}
	return feedback
}

// GetMesocycleSchemaTool returns the MCP tool handler for get_mesocycle_schema.
func (h *Handler) GetMesocycleSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// GetVolumeLandmarksTool returns the MCP tool handler for get_volume_landmarks.
func (h *Handler) GetVolumeLandmarksTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Landmarks()), nil, nil
	}
}

// CalculateSetsInput is the input for calculate_sets.
type CalculateSetsInput struct {
	MuscleGroup string          `json:"muscle_group" jsonschema:"Muscle group (e.g. Chest, Back, Quadriceps)"`
	Week        int             `json:"week" jsonschema:"Week of the mesocycle, starting at 1"`
	Feedback    []FeedbackInput `json:"feedback,omitempty" jsonschema:"Feedback of the previous week, optional"`
}

type CalculateSetsOutput struct {
	MuscleGroup progression.MuscleGroup `json:"muscle_group"`
	Week        int                     `json:"week"`
	Sets        int                     `json:"sets"`
}

// CalculateSetsTool returns the MCP tool handler for calculate_sets.
func (h *Handler) CalculateSetsTool() func(context.Context, *mcp.CallToolRequest, CalculateSetsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CalculateSetsInput) (*mcp.CallToolResult, any, error) {
		if in.MuscleGroup == "" {
			return errorResult("muscle_group is required"), nil, nil
		}
		sets, err := h.service.CalculateSets(in.MuscleGroup, in.Week, toFeedback(in.Feedback))
		if err != nil {
			return errorResult("Error calculating sets: " + err.Error()), nil, nil
		}
		return jsonResult(CalculateSetsOutput{
			MuscleGroup: progression.ParseMuscleGroup(in.MuscleGroup),
			Week:        in.Week,
			Sets:        sets,
		}), nil, nil
	}
}

// ClassifyExerciseInput is the input for classify_exercise.
type ClassifyExerciseInput struct {
	Name string `json:"name" jsonschema:"Exercise name (e.g. Incline Dumbbell Press)"`
}

// ClassifyExerciseTool returns the MCP tool handler for classify_exercise.
func (h *Handler) ClassifyExerciseTool() func(context.Context, *mcp.CallToolRequest, ClassifyExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ClassifyExerciseInput) (*mcp.CallToolResult, any, error) {
		if in.Name == "" {
			return errorResult("name is required"), nil, nil
		}
		return textResult(string(h.service.Classify(in.Name))), nil, nil
	}
}

// PlanWeekInput is the input for plan_week.
type PlanWeekInput struct {
	Exercises  []string        `json:"exercises" jsonschema:"Exercise names of the whole training week"`
	Week       int             `json:"week" jsonschema:"Week of the mesocycle, starting at 1"`
	TotalWeeks int             `json:"total_weeks,omitempty" jsonschema:"Mesocycle length in weeks; the last week is a deload"`
	Feedback   []FeedbackInput `json:"feedback,omitempty" jsonschema:"Feedback of the previous week, optional"`
}

// PlanWeekTool returns the MCP tool handler for plan_week.
func (h *Handler) PlanWeekTool() func(context.Context, *mcp.CallToolRequest, PlanWeekInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanWeekInput) (*mcp.CallToolResult, any, error) {
		plan, err := h.service.PlanWeek(in.Exercises, in.Week, in.TotalWeeks, toFeedback(in.Feedback))
		if err != nil {
			return errorResult("Error planning week: " + err.Error()), nil, nil
		}
		return jsonResult(plan), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
