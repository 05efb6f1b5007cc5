package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/schedule"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
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
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetGymplanContextTool returns the MCP tool handler for get_gymplan_context.
func (h *Handler) GetGymplanContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ScheduleInput is the input for get_schedule.
type ScheduleInput struct {
	UserID string `json:"user_id" jsonschema:"User id (uuid)"`
}

// GetScheduleTool returns the MCP tool handler for get_schedule.
func (h *Handler) GetScheduleTool() func(context.Context, *mcp.CallToolRequest, ScheduleInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ScheduleInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a uuid"), nil, nil
		}
		workouts, err := h.service.GetSchedule(ctx, userID)
		if err != nil {
			return errorResult("Error fetching schedule: " + err.Error()), nil, nil
		}
		return jsonResult(workouts), nil, nil
	}
}

// WorkoutPolicyInput is the input for get_workout_policy.
type WorkoutPolicyInput struct {
	Week int `json:"week" jsonschema:"Curriculum week (1-6)"`
	Day  int `json:"day" jsonschema:"Workout day within the week (1-6)"`
}

// GetWorkoutPolicyTool returns the MCP tool handler for get_workout_policy.
func (h *Handler) GetWorkoutPolicyTool() func(context.Context, *mcp.CallToolRequest, WorkoutPolicyInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in WorkoutPolicyInput) (*mcp.CallToolResult, any, error) {
		workout, err := h.service.GetWorkoutPolicy(in.Week, in.Day)
		if err != nil {
			return errorResult("Error describing workout: " + err.Error()), nil, nil
		}
		return jsonResult(workout), nil, nil
	}
}

// WorkoutLogInput is the input for get_workout_log.
type WorkoutLogInput struct {
	UserID string `json:"user_id" jsonschema:"User id (uuid)"`
	Week   int    `json:"week" jsonschema:"Curriculum week (1-6)"`
	Day    int    `json:"day" jsonschema:"Workout day within the week (1-6)"`
	Date   string `json:"date" jsonschema:"Workout date (YYYY-MM-DD)"`
}

// GetWorkoutLogTool returns the MCP tool handler for get_workout_log.
func (h *Handler) GetWorkoutLogTool() func(context.Context, *mcp.CallToolRequest, WorkoutLogInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutLogInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a uuid"), nil, nil
		}
		date, err := schedule.ParseDate(in.Date)
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}
		pos := curriculum.Position{Week: in.Week, Day: in.Day}
		exercises, err := h.service.GetWorkoutLog(ctx, userID, pos, date)
		if err != nil {
			return errorResult("Error fetching workout log: " + err.Error()), nil, nil
		}
		return jsonResult(exercises), nil, nil
	}
}
