package progress

import (
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/schedule"
)

// Preferences are the per-user scheduling settings.
type Preferences struct {
	RestDays         []int          `json:"rest_days"`
	ProgramStartDate *schedule.Date `json:"program_start_date,omitempty"`
	CustomMode       bool           `json:"custom_mode"`
	// ConfirmedAt is set once, the first time a program start date is saved.
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

func (p Preferences) Confirmed() bool {
	return p.ConfirmedAt != nil
}

func (p Preferences) RestDaySet() (schedule.RestDays, error) {
	return schedule.RestDaysFromInts(p.RestDays)
}

// StartDate returns the program start date, or fallback when none is set.
func (p Preferences) StartDate(fallback schedule.Date) schedule.Date {
	if p.ProgramStartDate == nil {
		return fallback
	}
	return *p.ProgramStartDate
}

func defaultPreferences(restDays []int) *Preferences {
	return &Preferences{
		RestDays: append([]int(nil), restDays...),
	}
}

// checkPreferences applies the save policy: rest days must name real
// weekdays, at least one and fewer than seven, and a confirmed program
// start date cannot be moved.
func checkPreferences(current, next Preferences) (schedule.RestDays, error) {
	restDays, err := next.RestDaySet()
	if err != nil {
		return 0, err
	}
	if restDays.IsEmpty() {
		return 0, &schedule.PreconditionError{Op: "save preferences", Detail: "at least one rest day is required"}
	}
	if restDays.All() {
		return 0, &schedule.PreconditionError{Op: "save preferences", Detail: "at least one training day is required"}
	}

	if current.Confirmed() && !sameDate(current.ProgramStartDate, next.ProgramStartDate) {
		return 0, &schedule.PreconditionError{
			Op:     "save preferences",
			Detail: fmt.Sprintf("program start date is confirmed (%s) and cannot change", current.ProgramStartDate),
		}
	}

	return restDays, nil
}

func sameDate(a, b *schedule.Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
