package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/mesotracker/internal/progression"
)

// NewServer builds the mesotracker MCP server. It is served over stdio by
// cmd/mesotracker_mcp and mounted at /mcp on the main backend.
func NewServer(schemaRepo SchemaRepo, planner *progression.Planner) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, planner))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "mesotracker",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_volume_landmarks",
		Description: "Returns the weekly volume landmarks (MEV, MAV, MRV sets) for every muscle group. Use when reasoning about how much training volume a muscle group tolerates.",
	}, h.GetVolumeLandmarksTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "calculate_sets",
		Description: "Returns the weekly set count for a muscle group in a given mesocycle week. Args: muscle_group, week (1-based); optional: feedback of the previous week (difficulty, soreness, performance).",
	}, h.CalculateSetsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "classify_exercise",
		Description: "Returns the muscle group an exercise name maps to (e.g. Romanian Deadlift -> Hamstrings). Unknown exercises map to Other.",
	}, h.ClassifyExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "plan_week",
		Description: "Returns the number of sets for every exercise of a training week. The weekly volume of a muscle group is split across its exercises. Args: exercises, week; optional: total_weeks (the last week is a deload), feedback.",
	}, h.PlanWeekTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_mesocycle_schema",
		Description: "Returns the DB schema of the mesotracker tables (users, mesocycles, weeks, workouts, exercises, sets, week_feedback): columns, types, nullable, default.",
	}, h.GetMesocycleSchemaTool())

	return s
}
