package schedule

import (
	"fmt"
)

// Trigger names what caused a schedule rebuild.
type Trigger string

const (
	TriggerLoad             Trigger = "load"
	TriggerRestDaysChanged  Trigger = "rest_days_changed"
	TriggerRecordsChanged   Trigger = "records_changed"
	TriggerStartDateChanged Trigger = "start_date_changed"
)

var Triggers = []Trigger{
	TriggerLoad,
	TriggerRestDaysChanged,
	TriggerRecordsChanged,
	TriggerStartDateChanged,
}

func (t Trigger) Valid() bool {
	for _, known := range Triggers {
		if t == known {
			return true
		}
	}
	return false
}

func ParseTrigger(s string) (Trigger, error) {
	t := Trigger(s)
	if !t.Valid() {
		return "", &PreconditionError{Op: "recompute", Detail: fmt.Sprintf("unknown trigger %q", s)}
	}
	return t, nil
}

// Recompute is the single entry point for rebuilding a schedule. Every trigger
// rebuilds from scratch; the trigger is only carried for observability.
func Recompute(trigger Trigger, in GenerateInput) (Schedule, error) {
	if !trigger.Valid() {
		return nil, &PreconditionError{Op: "recompute", Detail: fmt.Sprintf("unknown trigger %q", trigger)}
	}
	s, err := Generate(in)
	if err != nil {
		return nil, fmt.Errorf("recompute on %s: %w", trigger, err)
	}
	return s, nil
}
