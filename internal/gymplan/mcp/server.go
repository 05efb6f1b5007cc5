package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with gymplan tools: schema, schedule,
// workout policy and workout log.
func NewServer(schemaRepo SchemaRepo, planner Planner) *mcp.Server {
	svc := NewContextService(schemaRepo, planner)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymplan-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymplan_context",
		Description: "Returns the DB schema for gymplan tables (completed_workout, user_preferences, and the per-day workout tracking layout): table names, columns, types, nullable, default.",
	}, h.GetGymplanContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_schedule",
		Description: "Returns a user's workout schedule in date order: date, weekday, curriculum position (W1D1..W6D6), rep range and rest period. Arg: user_id (uuid). Past dates are completed workouts, later ones are projections.",
	}, h.GetScheduleTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_policy",
		Description: "Returns the training policy of one curriculum position: phase, workout type (multi_joint or isolation), rep range and rest period in seconds. Args: week, day (1-6).",
	}, h.GetWorkoutPolicyTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_log",
		Description: "Returns the logged exercises (name, notes, reps and weight per set) of one workout. Args: user_id (uuid), week, day (1-6), date (YYYY-MM-DD).",
	}, h.GetWorkoutLogTool())

	return s
}
