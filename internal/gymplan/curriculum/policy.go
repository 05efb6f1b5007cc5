package curriculum

import (
	"github.com/2beens/gymplan/internal/gymplan/address"
)

// Phase 2 (weeks 4-6) resets to phase 1's rep and rest ladder.
type Phase int

const (
	Phase1 Phase = 1
	Phase2 Phase = 2
)

type WorkoutType string

const (
	MultiJoint WorkoutType = "multi_joint"
	Isolation  WorkoutType = "isolation"
)

var (
	repRanges = map[WorkoutType][3]string{
		MultiJoint: {"9-11", "6-8", "2-5"},
		Isolation:  {"12-15", "16-20", "21-30"},
	}
	restPeriods = map[WorkoutType][3]int{
		MultiJoint: {90, 120, 180},
		Isolation:  {60, 75, 90},
	}
)

func PhaseOf(week int) (Phase, error) {
	if week < address.MinWeek || week > address.MaxWeek {
		return 0, address.NewRangeError("week", week, address.MinWeek, address.MaxWeek)
	}
	if week <= 3 {
		return Phase1, nil
	}
	return Phase2, nil
}

func WorkoutTypeOf(day int) (WorkoutType, error) {
	if day < address.MinDay || day > address.MaxDay {
		return "", address.NewRangeError("day", day, address.MinDay, address.MaxDay)
	}
	if day <= 3 {
		return MultiJoint, nil
	}
	return Isolation, nil
}

// ladderStep maps a week onto its step (1..3) of the phase ladder.
func ladderStep(week int) int {
	return ((week - 1) % 3) + 1
}

func RepRangeOf(week, day int) (string, error) {
	if err := address.CheckWeekDay(week, day); err != nil {
		return "", err
	}
	wt, _ := WorkoutTypeOf(day)
	return repRanges[wt][ladderStep(week)-1], nil
}

func RestPeriodSecondsOf(week, day int) (int, error) {
	if err := address.CheckWeekDay(week, day); err != nil {
		return 0, err
	}
	wt, _ := WorkoutTypeOf(day)
	return restPeriods[wt][ladderStep(week)-1], nil
}

// Workout bundles everything derived from one curriculum position.
type Workout struct {
	Week              int                  `json:"week"`
	Day               int                  `json:"day"`
	Phase             Phase                `json:"phase"`
	Type              WorkoutType          `json:"type"`
	RepRange          string               `json:"rep_range"`
	RestPeriodSeconds int                  `json:"rest_period_seconds"`
	Table             address.TableAddress `json:"table"`
}

func Describe(week, day int) (Workout, error) {
	table, err := address.Table(week, day)
	if err != nil {
		return Workout{}, err
	}
	phase, _ := PhaseOf(week)
	wt, _ := WorkoutTypeOf(day)
	return Workout{
		Week:              week,
		Day:               day,
		Phase:             phase,
		Type:              wt,
		RepRange:          repRanges[wt][ladderStep(week)-1],
		RestPeriodSeconds: restPeriods[wt][ladderStep(week)-1],
		Table:             table,
	}, nil
}
