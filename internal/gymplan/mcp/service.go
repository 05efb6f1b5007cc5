package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/schedule"

	"github.com/google/uuid"
)

// Planner is the part of the planner service the MCP tools read from.
type Planner interface {
	Schedule(ctx context.Context, userID uuid.UUID) (schedule.Schedule, error)
	WorkoutLog(ctx context.Context, userID uuid.UUID, pos curriculum.Position, date schedule.Date) ([]address.ExerciseData, error)
}

// contextService provides gymplan context data (schema, schedules, policy, logs).
// Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetSchedule(ctx context.Context, userID uuid.UUID) ([]ScheduledWorkout, error)
	GetWorkoutPolicy(week, day int) (curriculum.Workout, error)
	GetWorkoutLog(ctx context.Context, userID uuid.UUID, pos curriculum.Position, date schedule.Date) ([]address.ExerciseData, error)
}

// ScheduledWorkout is one schedule entry with its curriculum description.
type ScheduledWorkout struct {
	Date    schedule.Date      `json:"date"`
	Weekday string             `json:"weekday"`
	Workout curriculum.Workout `json:"workout"`
	Label   string             `json:"label"`
}

// ContextService holds dependencies and implements the gymplan context business logic.
type ContextService struct {
	schema  SchemaRepo
	planner Planner
}

// NewContextService builds a ContextService with the given dependencies.
func NewContextService(schemaRepo SchemaRepo, planner Planner) *ContextService {
	return &ContextService{
		schema:  schemaRepo,
		planner: planner,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the gymplan tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetGymplanColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatGymplanSchema(cols), nil
}

func formatGymplanSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymplan DB Schema\n\nNo gymplan tables found in the database.\n"
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
	b.WriteString("# Gymplan DB Schema\n\n")
	b.WriteString("Tables: completed_workout, user_preferences and 36 weekW_dayD_workout_tracking tables with the layout shown for week1_day1 (schema: public).\n\n")

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

// GetSchedule returns the user's schedule in date order.
func (s *ContextService) GetSchedule(ctx context.Context, userID uuid.UUID) ([]ScheduledWorkout, error) {
	sched, err := s.planner.Schedule(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := sched.Entries()
	workouts := make([]ScheduledWorkout, 0, len(entries))
	for _, e := range entries {
		workout, err := curriculum.Describe(e.Position.Week, e.Position.Day)
		if err != nil {
			return nil, fmt.Errorf("scheduled %s on %s: %w", e.Position, e.Date, err)
		}
		workouts = append(workouts, ScheduledWorkout{
			Date:    e.Date,
			Weekday: e.Date.Weekday().String(),
			Workout: workout,
			Label:   e.Position.String(),
		})
	}
	return workouts, nil
}

// GetWorkoutPolicy returns the rep range, rest period and phase of one curriculum position.
func (s *ContextService) GetWorkoutPolicy(week, day int) (curriculum.Workout, error) {
	return curriculum.Describe(week, day)
}

// GetWorkoutLog returns the logged exercises of one workout.
func (s *ContextService) GetWorkoutLog(
	ctx context.Context,
	userID uuid.UUID,
	pos curriculum.Position,
	date schedule.Date,
) ([]address.ExerciseData, error) {
	return s.planner.WorkoutLog(ctx, userID, pos, date)
}
